package wire_test

import (
	"testing"

	"github.com/delaneyj/patchbay/wire"
	"github.com/stretchr/testify/assert"
)

func TestConnectTo(t *testing.T) {
	master := wire.NewVariable(0)
	slave := wire.NewVariable(100)

	c := wire.ConnectTo[int](master, slave)
	assert.Equal(t, 0, slave.Value())

	master.SetValue(1)
	assert.Equal(t, 1, slave.Value())

	slave.SetValue(200)
	assert.Equal(t, 1, master.Value())

	master.SetValue(2)
	assert.Equal(t, 2, slave.Value())

	c.Disconnect()
	master.SetValue(3)
	assert.Equal(t, 2, slave.Value())
}

func TestBind(t *testing.T) {
	master := wire.NewVariable(0)
	slave := wire.NewVariable(1)

	c := wire.Bind[int](master, slave)
	assert.Equal(t, 0, master.Value())
	assert.Equal(t, 0, slave.Value())

	master.SetValue(1)
	assert.Equal(t, 1, master.Value())
	assert.Equal(t, 1, slave.Value())

	slave.SetValue(2)
	assert.Equal(t, 2, master.Value())
	assert.Equal(t, 2, slave.Value())

	c.Disconnect()
	master.SetValue(3)
	assert.Equal(t, 2, slave.Value())
	slave.SetValue(4)
	assert.Equal(t, 3, master.Value())
}

func TestBindDoesNotEcho(t *testing.T) {
	master := wire.NewVariable(0)
	slave := wire.NewVariable(0)
	wire.Bind[int](master, slave)

	var masterSets, slaveSets []int
	master.Connect(func(v int) { masterSets = append(masterSets, v) })
	slave.Connect(func(v int) { slaveSets = append(slaveSets, v) })

	master.SetValue(5)
	slave.SetValue(6)
	assert.Equal(t, []int{5, 6}, masterSets)
	assert.Equal(t, []int{5, 6}, slaveSets)
}

func TestBindChain(t *testing.T) {
	vars := make([]*wire.Variable[string], 5)
	for i := range vars {
		vars[i] = wire.NewVariable("")
	}
	for i := 1; i < len(vars); i++ {
		wire.Bind[string](vars[i-1], vars[i])
	}

	vars[0].SetValue("head")
	for _, v := range vars {
		assert.Equal(t, "head", v.Value())
	}
	vars[len(vars)-1].SetValue("tail")
	for _, v := range vars {
		assert.Equal(t, "tail", v.Value())
	}
}

func TestBindHoldsBackCorrectionOnReceivingSide(t *testing.T) {
	a := wire.NewVariable(0)
	b := wire.NewVariable(0)
	wire.Bind[int](a, b)
	a.Connect(func(v int) {
		if v > 10 {
			a.SetValue(10)
		}
	})

	b.SetValue(15)
	assert.Equal(t, 10, a.Value())
	assert.Equal(t, 15, b.Value())

	b.SetValue(3)
	assert.Equal(t, 3, a.Value())
	assert.Equal(t, 3, b.Value())
}

func TestBindQueuedCrossSetEchoesOnce(t *testing.T) {
	a := wire.NewVariable(0)
	b := wire.NewVariable(0)
	wire.Bind[int](a, b)

	var seen []int
	a.Connect(func(v int) { seen = append(seen, v) })
	b.Connect(func(v int) {
		if v == 1 {
			a.SetValue(7)
		}
	})

	b.SetValue(1)
	assert.Equal(t, 7, a.Value())
	assert.Equal(t, 7, b.Value())
	assert.Equal(t, []int{1, 7, 7}, seen)
}

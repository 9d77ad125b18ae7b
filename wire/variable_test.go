package wire_test

import (
	"testing"

	"github.com/delaneyj/patchbay/wire"
	"github.com/stretchr/testify/assert"
)

func TestVariableNotifiesAfterStore(t *testing.T) {
	v := wire.NewVariable(1)
	var seen []int
	v.Connect(func(x int) {
		assert.Equal(t, x, v.Value())
		seen = append(seen, v.Value())
	})

	v.SetValue(2)
	v.SetValue(3)
	assert.Equal(t, 3, v.Value())
	assert.Equal(t, []int{2, 3}, seen)
}

func TestVariableValuesDoNotReplay(t *testing.T) {
	v := wire.NewVariable("initial")
	got, _ := collect(v.Values())
	assert.Empty(t, *got)

	v.SetValue("next")
	assert.Equal(t, []string{"next"}, *got)
}

func TestVariableSetFromOwnSink(t *testing.T) {
	v := wire.NewVariable(0)
	var seen []int
	v.Connect(func(x int) {
		seen = append(seen, x)
		if x < 100 {
			v.SetValue(x + 1)
		}
	})

	v.SetValue(1)
	assert.Equal(t, 100, v.Value())
	assert.Len(t, seen, 100)
	assert.Equal(t, 1, seen[0])
	assert.Equal(t, 100, seen[99])
}

func TestCombine2(t *testing.T) {
	name := wire.NewVariable("ada")
	age := wire.NewVariable(36)
	got, c := collect(wire.Combine2[string, int](name, age))

	age.SetValue(37)
	name.SetValue("grace")
	assert.Equal(t, []wire.Tuple2[string, int]{
		{V0: "ada", V1: 37},
		{V0: "grace", V1: 37},
	}, *got)

	c.Disconnect()
	age.SetValue(1)
	assert.Len(t, *got, 2)
}

func TestCombine3(t *testing.T) {
	a := wire.NewVariable(1)
	b := wire.NewVariable(2)
	sum := wire.NewVariable(0)
	wire.Map(wire.Combine3[int, int, int](a, b, wire.NewVariable(3)), func(tup wire.Tuple3[int, int, int]) int {
		return tup.V0 + tup.V1 + tup.V2
	}).Connect(sum.SetValue)

	a.SetValue(10)
	assert.Equal(t, 15, sum.Value())
	b.SetValue(20)
	assert.Equal(t, 33, sum.Value())
}

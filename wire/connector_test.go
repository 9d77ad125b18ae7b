package wire_test

import (
	"testing"

	"github.com/delaneyj/patchbay/wire"
	"github.com/stretchr/testify/assert"
)

func TestConnectorBind(t *testing.T) {
	connector := wire.NewConnector()
	master := wire.NewVariable(0)
	slave := wire.NewVariable(1)

	wire.BindIn[int](connector, master, slave)
	assert.Equal(t, 1, connector.Len())
	assert.Equal(t, 0, master.Value())
	assert.Equal(t, 0, slave.Value())

	master.SetValue(1)
	assert.Equal(t, 1, slave.Value())
	slave.SetValue(2)
	assert.Equal(t, 2, master.Value())

	connector.Disconnect()
	assert.Equal(t, 0, connector.Len())
	master.SetValue(3)
	assert.Equal(t, 2, slave.Value())
	slave.SetValue(4)
	assert.Equal(t, 3, master.Value())
}

func TestConnectorPutInto(t *testing.T) {
	connector := wire.NewConnector()
	s := wire.NewSignal[int]()
	a, ca := collect[int](s)
	b, cb := collect[int](s)
	ca.PutInto(connector)
	cb.PutInto(connector)

	s.Send(1)
	connector.Disconnect()
	s.Send(2)

	assert.False(t, ca.Connected())
	assert.False(t, cb.Connected())
	assert.Equal(t, []int{1}, *a)
	assert.Equal(t, []int{1}, *b)
	assert.Equal(t, 0, s.Subscribers())
}

func TestConnectorDisconnectTwice(t *testing.T) {
	connector := wire.NewConnector()
	connector.Disconnect()

	v := wire.NewVariable(0)
	got, c := collect[int](v)
	c.PutInto(connector)
	connector.Disconnect()
	connector.Disconnect()

	v.SetValue(1)
	assert.Empty(t, *got)
}

func TestConnectorForgetsSelfDisconnected(t *testing.T) {
	connector := wire.NewConnector()
	s := wire.NewSignal[int]()
	_, c := collect[int](s)
	c.PutInto(connector)
	assert.Equal(t, 1, connector.Len())

	c.Disconnect()
	assert.Equal(t, 0, connector.Len())

	connector.Add(c)
	assert.Equal(t, 0, connector.Len())
}

func TestConnectorConnectIn(t *testing.T) {
	connector := wire.NewConnector()
	master := wire.NewVariable("a")
	slave := wire.NewVariable("")

	wire.ConnectIn[string](connector, master, slave)
	assert.Equal(t, "a", slave.Value())
	master.SetValue("b")
	assert.Equal(t, "b", slave.Value())

	connector.Disconnect()
	master.SetValue("c")
	assert.Equal(t, "b", slave.Value())
}

package wire

import mapset "github.com/deckarep/golang-set/v2"

// Connector owns a group of connections so they can be torn down together.
// The zero value is not usable; use NewConnector.
type Connector struct {
	conns mapset.Set[*Connection]
}

func NewConnector() *Connector {
	return &Connector{
		conns: mapset.NewSet[*Connection](),
	}
}

// Add takes ownership of conn. A connection disconnected on its own is
// dropped from the connector.
func (c *Connector) Add(conn *Connection) {
	if conn == nil {
		return
	}
	c.conns.Add(conn)
	if !conn.whenDisconnected(func() { c.conns.Remove(conn) }) {
		c.conns.Remove(conn)
	}
}

// Len returns the number of live connections owned.
func (c *Connector) Len() int {
	return c.conns.Cardinality()
}

// Disconnect disconnects and forgets every owned connection. Calling it on
// an empty connector does nothing.
func (c *Connector) Disconnect() {
	owned := c.conns.ToSlice()
	c.conns.Clear()
	for _, conn := range owned {
		conn.Disconnect()
	}
}

// BindIn binds master and slave in both directions and hands the binding to c.
func BindIn[V any](c *Connector, master, slave Updatable[V]) *Connection {
	return Bind(master, slave).PutInto(c)
}

// ConnectIn makes slave follow master and hands the link to c.
func ConnectIn[V any](c *Connector, master Observable[V], slave Updatable[V]) *Connection {
	return ConnectTo(master, slave).PutInto(c)
}

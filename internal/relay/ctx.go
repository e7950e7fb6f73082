package relay

import (
	"net"
)

// tcpCtx holds one relayed connection pair and its staging buffers.
type tcpCtx struct {
	info       string
	clientConn net.Conn
	remoteConn net.Conn
	clientBuf  []byte
	remoteBuf  []byte
}

func newTcpCtx() *tcpCtx {
	return &tcpCtx{
		clientBuf: make([]byte, clientBufCapacity),
		remoteBuf: make([]byte, remoteBufCapacity),
	}
}

// ensure makes both staging buffers at least size bytes long.
func (c *tcpCtx) ensure(size int) {
	if len(c.clientBuf) < size {
		c.clientBuf = make([]byte, size)
	}
	if len(c.remoteBuf) < size {
		c.remoteBuf = make([]byte, size)
	}
}

func (c *tcpCtx) reset() {
	c.info = ""
	if c.clientConn != nil {
		_ = c.clientConn.Close()
		c.clientConn = nil
	}
	if c.remoteConn != nil {
		_ = c.remoteConn.Close()
		c.remoteConn = nil
	}
}

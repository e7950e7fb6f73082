package relay

import "sync"

var tcpCtxPool *sync.Pool

func init() {
	tcpCtxPool = &sync.Pool{
		New: func() interface{} {
			return newTcpCtx()
		},
	}
}

func getTcpCtx(bufSize int) *tcpCtx {
	c := tcpCtxPool.Get().(*tcpCtx)
	c.ensure(bufSize)
	return c
}

func putTcpCtx(c *tcpCtx) {
	c.reset()
	tcpCtxPool.Put(c)
}

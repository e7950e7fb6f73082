// Package relay forwards TCP connections to a fixed target, copying bytes
// verbatim in both directions.
package relay

import (
	"context"
	"errors"
	"io"
	"net"
	"sync/atomic"

	"github.com/zzzzer91/gopkg/logx"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/zzzzer91/bytekit/internal/config"
	"github.com/zzzzer91/bytekit/streamio"
)

type Stats struct {
	Conns int64
	Up    int64 // client -> target
	Down  int64 // target -> client
}

type Relay struct {
	conf  *config.Relay
	conns atomic.Int64
	up    atomic.Int64
	down  atomic.Int64
}

func New(conf *config.Relay) *Relay {
	return &Relay{conf: conf}
}

func (r *Relay) Stats() Stats {
	return Stats{
		Conns: r.conns.Load(),
		Up:    r.up.Load(),
		Down:  r.down.Load(),
	}
}

// ListenAndServe listens on the configured address and serves until ctx is
// done.
func (r *Relay) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", r.conf.Listen)
	if err != nil {
		return err
	}
	return r.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done. l is closed on return.
func (r *Relay) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = l.Close()
	})
	defer stop()
	defer l.Close()

	logx.Info("Relay " + r.conf.Name + " listening on " + l.Addr().String() + " -> " + r.conf.Target)
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			logx.Error(err)
			continue
		}
		if tc, ok := conn.(*net.TCPConn); ok {
			if err := tc.SetKeepAlive(true); err != nil {
				_ = conn.Close()
				logx.Error(err)
				continue
			}
		}
		c := getTcpCtx(r.conf.BufferSize)
		c.clientConn = conn
		go r.handleConn(ctx, c)
	}
}

func (r *Relay) handleConn(ctx context.Context, c *tcpCtx) {
	defer putTcpCtx(c)

	r.conns.Add(1)
	c.info = c.clientConn.RemoteAddr().String() + " -> " + r.conf.Target
	logx.Debug("Connecting " + c.info)
	var d net.Dialer
	dctx, cancel := context.WithTimeout(ctx, dialTimeout)
	conn, err := d.DialContext(dctx, "tcp", r.conf.Target)
	cancel()
	if err != nil {
		logx.Error("Connect " + c.info + " error: " + err.Error())
		return
	}
	c.remoteConn = conn
	logx.Info("Connected " + c.info)

	size := r.conf.BufferSize
	if size <= 0 {
		size = streamio.DefaultBufSize
	}
	st, err := Pipe(ctx, c.clientConn, c.remoteConn, c.clientBuf[:min(size, len(c.clientBuf))], c.remoteBuf[:min(size, len(c.remoteBuf))])
	r.up.Add(st.Up)
	r.down.Add(st.Down)
	if err != nil {
		logx.Error(c.info + " relay err: " + err.Error())
	}
	logx.Debugf("%s tunnel closed, up %d bytes, down %d bytes", c.info, st.Up, st.Down)
}

// Pipe copies client to remote and remote to client until both directions
// reach io.EOF, then closes both connections. Each direction half-closes
// its destination when its source is drained. A failure in one direction
// or the end of ctx tears down the other.
func Pipe(ctx context.Context, client, remote net.Conn, upBuf, downBuf []byte) (Stats, error) {
	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() {
		_ = client.Close()
		_ = remote.Close()
	})
	defer stop()

	var st Stats
	var upErr, downErr error
	g.Go(func() error {
		st.Up, upErr = pump(gctx, remote, client, upBuf)
		return upErr
	})
	g.Go(func() error {
		st.Down, downErr = pump(gctx, client, remote, downBuf)
		return downErr
	})
	_ = g.Wait()

	err := multierr.Combine(upErr, downErr)
	if ctx.Err() != nil {
		err = multierr.Append(err, ctx.Err())
	}
	_ = client.Close()
	_ = remote.Close()
	return st, err
}

func pump(ctx context.Context, dst, src net.Conn, buf []byte) (int64, error) {
	n, err := streamio.Copy(ctx, streamio.FromWriter(dst), streamio.FromReader(src), streamio.WithBuffer(buf))
	closeWrite(dst)
	if err != nil && ctx.Err() != nil && isTeardown(err) {
		// torn down by the other direction
		err = nil
	}
	return n, err
}

func isTeardown(err error) bool {
	return errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, context.Canceled)
}

func closeWrite(conn net.Conn) {
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}
}

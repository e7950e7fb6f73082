package relay

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzzzer91/bytekit/internal/config"
)

// startTarget runs a server that reads a whole request and answers with
// "pong:" followed by the request.
func startTarget(t *testing.T) net.Listener {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				req, err := io.ReadAll(conn)
				if err != nil {
					return
				}
				_, _ = conn.Write(append([]byte("pong:"), req...))
			}(conn)
		}
	}()
	return l
}

func startRelay(t *testing.T, target string, bufSize int) (*Relay, string, context.CancelFunc, chan error) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	r := New(&config.Relay{Name: "test", Target: target, BufferSize: bufSize})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, l) }()
	return r, l.Addr().String(), cancel, done
}

func roundTrip(t *testing.T, addr, payload string) string {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
	_, err = conn.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, conn.(*net.TCPConn).CloseWrite())
	resp, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(resp)
}

func TestRelayRoundTrip(t *testing.T) {
	target := startTarget(t)
	r, addr, cancel, done := startRelay(t, target.Addr().String(), 0)

	assert.Equal(t, "pong:ping", roundTrip(t, addr, "ping"))

	big := strings.Repeat("0123456789", 20000)
	assert.Equal(t, "pong:"+big, roundTrip(t, addr, big))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not stop")
	}

	assert.Eventually(t, func() bool {
		st := r.Stats()
		return st.Conns == 2 && st.Up == int64(4+len(big)) && st.Down == int64(9+5+len(big))
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRelaySmallBuffer(t *testing.T) {
	target := startTarget(t)
	_, addr, cancel, _ := startRelay(t, target.Addr().String(), 7)
	defer cancel()

	payload := strings.Repeat("abc", 1000)
	assert.Equal(t, "pong:"+payload, roundTrip(t, addr, payload))
}

func TestPipeStopsOnCancel(t *testing.T) {
	c1, c2 := net.Pipe()
	r1, r2 := net.Pipe()
	defer c2.Close()
	defer r2.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := Pipe(ctx, c1, r1, make([]byte, 64), make([]byte, 64))
		done <- err
	}()

	_, err := c2.Write([]byte("hi"))
	require.NoError(t, err)
	buf := make([]byte, 2)
	_, err = io.ReadFull(r2, buf)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(buf))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("pipe did not stop")
	}
}

func TestPoolEnsure(t *testing.T) {
	c := getTcpCtx(64 * 1024)
	assert.GreaterOrEqual(t, len(c.clientBuf), 64*1024)
	assert.GreaterOrEqual(t, len(c.remoteBuf), 64*1024)
	putTcpCtx(c)
	assert.Nil(t, c.clientConn)
}

package transport

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/snip/config"
	"github.com/stretchr/testify/require"
)

func TestTCP(t *testing.T) {
	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 10 * time.Millisecond

	tcp := NewTCP()
	require.NoError(t, tcp.Bind("127.0.0.1:0"))

	errch := make(chan error)
	go func() {
		errch <- tcp.Listen(cfg, func(conn net.Conn) {
			client := NewClient(conn, time.Second, make([]byte, 64))
			data, err := client.Read()
			if err != nil {
				return
			}

			_, _ = client.Write(data)
		})
	}()

	conn, err := net.Dial("tcp", tcp.Addr().String())
	require.NoError(t, err)
	_, err = conn.Write([]byte("ping"))
	require.NoError(t, err)

	// the server closes the connection right after the callback returns
	echoed, err := io.ReadAll(conn)
	require.NoError(t, err)
	require.Equal(t, "ping", string(echoed))
	require.NoError(t, conn.Close())

	tcp.Stop()
	require.NoError(t, <-errch)
	tcp.Wait()
	tcp.Close()
}

func TestClientPushback(t *testing.T) {
	server, peer := net.Pipe()
	defer peer.Close()

	client := NewClient(server, 0, make([]byte, 16))
	go func() {
		_, _ = peer.Write([]byte("hello"))
	}()

	data, err := client.Read()
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	client.Pushback(data[1:])
	data, err = client.Read()
	require.NoError(t, err)
	require.Equal(t, "ello", string(data))
	require.NoError(t, client.Close())
}

func TestTCPClose(t *testing.T) {
	cfg := config.Default().NET

	tcp := NewTCP()
	require.NoError(t, tcp.Bind("127.0.0.1:0"))

	errch := make(chan error)
	go func() {
		errch <- tcp.Listen(cfg, func(net.Conn) {})
	}()

	// the interrupt period is way longer than the test may run, so only closing the
	// listener can unblock the loop
	tcp.Stop()
	tcp.Close()

	select {
	case err := <-errch:
		require.NoError(t, err)
	case <-time.After(cfg.AcceptLoopInterruptPeriod / 2):
		t.Fatal("accept loop did not quit")
	}
}

package bolt

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionHandshakeVersionRejected(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		handshake := make([]byte, 20)
		if _, err := io.ReadFull(conn, handshake); err != nil {
			return
		}
		conn.Write(noVersionSupported)
	}()

	driver, err := NewDriver("bolt://" + ln.Addr().String())
	require.NoError(t, err)

	session, err := driver.Session()
	require.Nil(t, session)
	require.ErrorContains(t, err, "no supported version")
}

func TestSessionDialFailure(t *testing.T) {
	// Grab a port and release it again so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	driver, err := NewDriver("bolt://" + addr)
	require.NoError(t, err)

	session, err := driver.Session()
	require.Nil(t, session)
	require.ErrorContains(t, err, "dialing")
}

func TestPipelinedStatementsShareOneFlush(t *testing.T) {
	server, session := newTestSession(t, map[string]stubResult{
		"RETURN 1": {fields: []string{"1"}, rows: [][]interface{}{{int64(1)}}},
		"RETURN 2": {fields: []string{"2"}, rows: [][]interface{}{{int64(2)}}},
	})

	// Statements on one session arrive in submission order even when
	// issued back to back.
	_, err := session.Run("RETURN 1", nil)
	require.NoError(t, err)
	_, err = session.Run("RETURN 2", nil)
	require.NoError(t, err)

	require.Equal(t, []string{"RETURN 1", "RETURN 2"}, server.Statements())
}

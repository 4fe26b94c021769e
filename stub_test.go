package bolt

import (
	"io"
	"math"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphbolt/golang-neo4j-bolt-session/encoding"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures/messages"
)

// stubResult is what the stub server answers for one statement: the
// header fields and rows of its result, or a failure on either the
// execution request or the result stream request.
type stubResult struct {
	fields      []string
	rows        [][]interface{}
	runFailure  map[string]interface{}
	pullFailure map[string]interface{}
}

// stubServer is an in-process Bolt endpoint. It speaks the version
// handshake, accepts any INIT, and then answers RUN/PULL_ALL pairs
// from a statement table, modelling the server's failed state: once a
// request fails, everything but ACK_FAILURE and RESET is IGNORED.
type stubServer struct {
	t       *testing.T
	ln      net.Listener
	results map[string]stubResult

	mu   sync.Mutex
	runs []messages.RunMessage
	init *messages.InitMessage
}

func newStubServer(t *testing.T, results map[string]stubResult) *stubServer {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &stubServer{t: t, ln: ln, results: results}
	go s.serve()
	t.Cleanup(func() { s.ln.Close() })
	return s
}

func (s *stubServer) URL() string {
	return "bolt://" + s.ln.Addr().String()
}

// Runs returns the RUN messages received so far, in arrival order.
func (s *stubServer) Runs() []messages.RunMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]messages.RunMessage(nil), s.runs...)
}

// Statements returns just the statement text of every RUN received.
func (s *stubServer) Statements() []string {
	runs := s.Runs()
	statements := make([]string, len(runs))
	for i, r := range runs {
		statements[i] = r.Statement
	}
	return statements
}

// Init returns the INIT message the client authenticated with.
func (s *stubServer) Init() *messages.InitMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.init
}

func (s *stubServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *stubServer) handle(conn net.Conn) {
	defer conn.Close()

	handshake := make([]byte, 20)
	if _, err := io.ReadFull(conn, handshake); err != nil {
		return
	}
	if _, err := conn.Write([]byte{0x00, 0x00, 0x00, 0x01}); err != nil {
		return
	}

	send := func(msgs ...structures.Structure) bool {
		for _, m := range msgs {
			if err := encoding.NewEncoder(conn, math.MaxUint16).Encode(m); err != nil {
				return false
			}
		}
		return true
	}

	var pull stubResult
	failed := false
	for {
		req, err := encoding.NewDecoder(conn).Decode()
		if err != nil {
			return
		}

		switch m := req.(type) {
		case messages.InitMessage:
			s.mu.Lock()
			s.init = &m
			s.mu.Unlock()
			if !send(messages.NewSuccessMessage(map[string]interface{}{"server": "Stub/1.0"})) {
				return
			}

		case messages.RunMessage:
			s.mu.Lock()
			s.runs = append(s.runs, m)
			s.mu.Unlock()
			if failed {
				if !send(messages.NewIgnoredMessage()) {
					return
				}
				continue
			}
			result := s.results[m.Statement]
			if result.runFailure != nil {
				failed = true
				if !send(messages.NewFailureMessage(result.runFailure)) {
					return
				}
				continue
			}
			pull = result
			fields := make([]interface{}, len(result.fields))
			for i, f := range result.fields {
				fields[i] = f
			}
			if !send(messages.NewSuccessMessage(map[string]interface{}{"fields": fields})) {
				return
			}

		case messages.PullAllMessage:
			if failed {
				if !send(messages.NewIgnoredMessage()) {
					return
				}
				continue
			}
			if pull.pullFailure != nil {
				failed = true
				if !send(messages.NewFailureMessage(pull.pullFailure)) {
					return
				}
				continue
			}
			for _, row := range pull.rows {
				if !send(messages.NewRecordMessage(row)) {
					return
				}
			}
			if !send(messages.NewSuccessMessage(map[string]interface{}{"type": "rw"})) {
				return
			}

		case messages.DiscardAllMessage:
			if failed {
				if !send(messages.NewIgnoredMessage()) {
					return
				}
				continue
			}
			if !send(messages.NewSuccessMessage(map[string]interface{}{})) {
				return
			}

		case messages.AckFailureMessage:
			failed = false
			if !send(messages.NewSuccessMessage(map[string]interface{}{})) {
				return
			}

		case messages.ResetMessage:
			failed = false
			if !send(messages.NewSuccessMessage(map[string]interface{}{})) {
				return
			}

		default:
			s.t.Errorf("stub server got unexpected message: %#v", req)
			return
		}
	}
}

package bolt

import (
	"time"

	"github.com/google/uuid"

	"github.com/graphbolt/golang-neo4j-bolt-session/log"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures/messages"
)

// Session is a logical session over an established connection, which
// it owns exclusively for its lifetime. Sessions should generally be
// constructed with Driver.Session.
//
// A Session and any Transaction within ARE NOT THREAD SAFE. If you
// want to use multiple goroutines, create a session for each from the
// driver.
type Session struct {
	id         uuid.UUID
	conn       *conn
	tx         *Transaction
	benchTests []*BenchTest
}

func newSession(c *conn) *Session {
	return &Session{id: uuid.New(), conn: c}
}

// Run executes a parameterized Cypher statement and returns one record
// per result row, in the order the server emitted them. The parameter
// map is copied, so mutating it afterwards has no effect on the
// request.
//
// The statement execution request and the result stream request are
// pipelined: both are queued and flushed together, then their
// responses are consumed in order.
func (s *Session) Run(statement string, parameters map[string]interface{}) ([]Record, error) {
	if s.conn == nil {
		return nil, newInvariantViolation("session already closed")
	}

	params := make(map[string]interface{}, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}

	t := &BenchTest{}
	t.Init = time.Now()

	log.Infof("[session %s] Running statement: %s (params: %#v)", s.id, statement, params)

	runResp, err := s.conn.enqueue(messages.NewRunMessage(statement, params))
	if err != nil {
		return nil, err
	}
	pullResp, err := s.conn.enqueue(messages.NewPullAllMessage())
	if err != nil {
		return nil, err
	}

	t.StartSend = time.Now()
	if err := s.conn.flush(); err != nil {
		return nil, err
	}
	t.EndSend = time.Now()

	if err := runResp.Consume(); err != nil {
		return nil, err
	}
	t.StartRecv = time.Now()
	if err := pullResp.Consume(); err != nil {
		return nil, err
	}
	t.EndRecv = time.Now()

	fields := runResp.Fields()
	rows := pullResp.Rows()
	records := make([]Record, len(rows))
	for i, row := range rows {
		values := make([]interface{}, len(row))
		for j, raw := range row {
			values[j] = hydrate(raw)
		}
		records[i] = NewRecord(fields, values)
	}

	t.Done = time.Now()
	s.benchTests = append(s.benchTests, t)

	return records, nil
}

// BeginTransaction creates a new transaction within this session by
// running BEGIN. At most one transaction may be open per session at a
// time.
func (s *Session) BeginTransaction() (*Transaction, error) {
	if s.conn == nil {
		return nil, newInvariantViolation("session already closed")
	}
	if s.tx != nil {
		return nil, newInvariantViolation("a transaction is already open on this session")
	}

	if _, err := s.Run("BEGIN", nil); err != nil {
		return nil, err
	}

	s.tx = &Transaction{session: s}
	return s.tx, nil
}

// Close shuts the session down and releases its connection. An open
// transaction is rolled back first. Closing an already-closed session
// is a no-op.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil {
			log.Errorf("[session %s] An error occurred rolling back open transaction on close: %s", s.id, err)
		}
	}
	err := s.conn.close()
	s.conn = nil
	log.Infof("[session %s] Session closed", s.id)
	return err
}

package bolt

import (
	"bytes"
	"io"
	"net"
	"net/url"
	"time"

	"github.com/graphbolt/golang-neo4j-bolt-session/encoding"
	"github.com/graphbolt/golang-neo4j-bolt-session/errors"
	"github.com/graphbolt/golang-neo4j-bolt-session/log"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures/messages"
)

const (
	// ClientID is the client name sent in the INIT message
	ClientID = "GraphboltBoltSession/1.0"

	defaultPort = "7687"
)

var (
	magicPreamble     = []byte{0x60, 0x60, 0xB0, 0x17}
	supportedVersions = []byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	noVersionSupported = []byte{0x00, 0x00, 0x00, 0x00}
)

// conn owns the TCP stream to the server and the request pipeline on
// top of it. Requests are encoded into an outgoing buffer by enqueue,
// written out by flush, and their responses are resolved strictly in
// submission order by fetchNext, which hands each decoded message to
// the response at the head of the pending queue.
//
// A conn belongs to exactly one Session and is not safe for concurrent
// use.
type conn struct {
	url           *url.URL
	user          string
	password      string
	conn          net.Conn
	timeout       time.Duration
	chunkSize     uint16
	serverVersion []byte

	out     bytes.Buffer
	pending []*Response

	bad    bool
	closed bool
}

func newConn(u *url.URL, user, password string, timeout time.Duration, chunkSize uint16) (*conn, error) {
	c := &conn{
		url:           u,
		user:          user,
		password:      password,
		timeout:       timeout,
		chunkSize:     chunkSize,
		serverVersion: make([]byte, 4),
	}
	if err := c.initialize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *conn) initialize() error {
	addr := c.url.Host
	if c.url.Port() == "" {
		addr = net.JoinHostPort(c.url.Hostname(), defaultPort)
	}

	var err error
	c.conn, err = net.DialTimeout("tcp", addr, c.timeout)
	if err != nil {
		return errors.Wrap(err, "An error occurred dialing %s", addr)
	}

	if err := c.handshake(); err != nil {
		c.close()
		return err
	}

	if err := c.sendInit(); err != nil {
		c.close()
		return err
	}

	log.Infof("Successfully initiated Bolt connection to %s, server version %x", addr, c.serverVersion)
	return nil
}

func (c *conn) handshake() error {
	if _, err := c.Write(append(magicPreamble, supportedVersions...)); err != nil {
		return errors.Wrap(err, "An error occurred writing magic preamble and supported versions")
	}

	if _, err := io.ReadFull(c, c.serverVersion); err != nil {
		return errors.Wrap(err, "An error occurred reading server version")
	}
	if bytes.Equal(c.serverVersion, noVersionSupported) {
		return errors.New("Server responded with no supported version")
	}
	return nil
}

func (c *conn) sendInit() error {
	log.Infof("Sending INIT message. ClientID: %s User: %s", ClientID, c.user)

	resp, err := c.enqueue(messages.NewInitMessage(ClientID, c.user, c.password))
	if err != nil {
		return err
	}
	if err := c.flush(); err != nil {
		return err
	}
	if err := resp.Consume(); err != nil {
		return errors.Wrap(err, "An error occurred initializing Bolt connection")
	}
	return nil
}

// Read reads from the underlying connection under the read deadline
func (c *conn) Read(b []byte) (n int, err error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, errors.Wrap(err, "An error occurred setting read deadline")
	}
	n, err = c.conn.Read(b)
	if log.GetLevel() >= log.TraceLevel {
		log.Tracef("Read %d bytes from stream:\n\n%s\n", n, sprintByteHex(b[:n]))
	}
	if err != nil && err != io.EOF {
		err = errors.Wrap(err, "An error occurred reading from stream")
	}
	return n, err
}

// Write writes to the underlying connection under the write deadline
func (c *conn) Write(b []byte) (n int, err error) {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, errors.Wrap(err, "An error occurred setting write deadline")
	}
	n, err = c.conn.Write(b)
	if log.GetLevel() >= log.TraceLevel {
		log.Tracef("Wrote %d of %d bytes to stream:\n\n%s\n", n, len(b), sprintByteHex(b[:n]))
	}
	if err != nil {
		err = errors.Wrap(err, "An error occurred writing to stream")
	}
	return n, err
}

// enqueue encodes a request into the outgoing buffer and registers a
// Response for it at the tail of the pipeline. Nothing touches the
// network until flush.
func (c *conn) enqueue(msg structures.Structure) (*Response, error) {
	if c.closed {
		return nil, errors.New("Connection already closed")
	}
	if c.bad {
		return nil, errors.New("Connection is in an unusable state")
	}
	if err := encoding.NewEncoder(&c.out, c.chunkSize).Encode(msg); err != nil {
		return nil, errors.Wrap(err, "An error occurred encoding request")
	}
	r := &Response{conn: c}
	c.pending = append(c.pending, r)
	return r, nil
}

// flush writes every queued request to the stream in one go.
func (c *conn) flush() error {
	if c.out.Len() == 0 {
		return nil
	}
	_, err := c.Write(c.out.Bytes())
	c.out.Reset()
	if err != nil {
		c.bad = true
		return err
	}
	return nil
}

// fetchNext decodes one message off the stream and applies it to the
// response at the head of the pipeline. Responses settle strictly in
// submission order; a terminal message pops the head.
func (c *conn) fetchNext() error {
	if len(c.pending) == 0 {
		return errors.New("No pending response to receive a message")
	}

	msg, err := encoding.NewDecoder(c).Decode()
	if err != nil {
		c.bad = true
		return errors.Wrap(err, "An error occurred decoding a message from the stream")
	}

	head := c.pending[0]
	switch m := msg.(type) {
	case messages.RecordMessage:
		log.Tracef("Got record message: %#v", m)
		head.rows = append(head.rows, m.Values)
	case messages.SuccessMessage:
		log.Tracef("Got success message: %#v", m)
		head.metadata = m.Metadata
		c.settle(head)
	case messages.FailureMessage:
		log.Infof("Got failure message: %#v", m)
		head.failure = m.Metadata
		c.settle(head)
	case messages.IgnoredMessage:
		log.Tracef("Got ignored message: %#v", m)
		head.ignored = true
		c.settle(head)
	default:
		c.bad = true
		return errors.New("Unrecognized response type: %T Value: %#v", msg, msg)
	}
	return nil
}

func (c *conn) settle(r *Response) {
	r.done = true
	c.pending = c.pending[1:]
}

// ackFailure restores the connection after a response ended in
// FAILURE. Any responses still queued behind the failed one are
// drained first; the server answers those with IGNORED. If the
// acknowledgement itself fails a RESET is attempted, and if that fails
// too the connection is closed and marked bad.
func (c *conn) ackFailure() error {
	log.Info("Acknowledging failure")

	ack, err := c.enqueue(messages.NewAckFailureMessage())
	if err != nil {
		return err
	}
	if err := c.flush(); err != nil {
		return err
	}
	for !ack.done {
		if err := c.fetchNext(); err != nil {
			c.close()
			return err
		}
	}
	if ack.failure != nil || ack.ignored {
		return c.reset()
	}
	return nil
}

// reset returns the server to a clean state. Failure here is
// unrecoverable: the connection is closed and marked bad.
func (c *conn) reset() error {
	log.Info("Resetting session")

	r, err := c.enqueue(messages.NewResetMessage())
	if err != nil {
		return err
	}
	if err := c.flush(); err != nil {
		return err
	}
	for !r.done {
		if err := c.fetchNext(); err != nil {
			c.close()
			return err
		}
	}
	if r.failure != nil {
		c.bad = true
		c.close()
		return errors.New("Error resetting session: %#v. Closing connection", r.failure)
	}
	return nil
}

// close releases the underlying stream. Safe to call more than once.
func (c *conn) close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return errors.Wrap(err, "An error occurred closing the connection")
	}
	return nil
}

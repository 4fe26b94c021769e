package bolt

import "github.com/graphbolt/golang-neo4j-bolt-session/log"

// Response tracks one outstanding request's eventual outcome on the
// pipeline: zero or more rows followed by either success metadata or
// failure metadata. The connection settles responses strictly in the
// order they were enqueued.
type Response struct {
	conn *conn

	rows     [][]interface{}
	metadata map[string]interface{}
	failure  map[string]interface{}
	ignored  bool

	done  bool
	acked bool
}

// Consume blocks until this response is terminal, driving the
// connection message by message. Earlier responses in the pipeline are
// settled along the way, so consuming out of submission order still
// observes every message exactly once.
//
// If the server reported a failure the connection is restored first
// (see conn.ackFailure) and a QueryFailureError carrying the failure
// metadata is returned.
func (r *Response) Consume() error {
	for !r.done {
		if err := r.conn.fetchNext(); err != nil {
			return err
		}
	}

	if r.failure != nil {
		if !r.acked {
			r.acked = true
			if err := r.conn.ackFailure(); err != nil {
				log.Errorf("An error occurred acknowledging failure: %s", err)
				return err
			}
		}
		return &QueryFailureError{Metadata: r.failure}
	}
	return nil
}

// Fields returns the ordered field names from the response's success
// metadata, or nil when the response carried none.
func (r *Response) Fields() []string {
	raw, ok := r.metadata["fields"].([]interface{})
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		name, ok := f.(string)
		if !ok {
			log.Errorf("Unrecognized fields in success metadata: %T %#v", f, f)
			return nil
		}
		fields = append(fields, name)
	}
	return fields
}

// Rows returns the raw, unhydrated rows the response accumulated, in
// arrival order.
func (r *Response) Rows() [][]interface{} {
	return r.rows
}

// Metadata returns the success metadata, nil until the response
// settles successfully.
func (r *Response) Metadata() map[string]interface{} {
	return r.metadata
}

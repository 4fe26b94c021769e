package messages

// Signature bytes for the client-to-server messages of Bolt v1
const (
	// InitMessageSignature is the signature byte for the INIT message
	InitMessageSignature = 0x01
	// AckFailureMessageSignature is the signature byte for the ACK_FAILURE message
	AckFailureMessageSignature = 0x0E
	// ResetMessageSignature is the signature byte for the RESET message
	ResetMessageSignature = 0x0F
	// RunMessageSignature is the signature byte for the RUN message
	RunMessageSignature = 0x10
	// DiscardAllMessageSignature is the signature byte for the DISCARD_ALL message
	DiscardAllMessageSignature = 0x2F
	// PullAllMessageSignature is the signature byte for the PULL_ALL message
	PullAllMessageSignature = 0x3F
)

// InitMessage identifies the client and authenticates the connection.
// It must be the first message sent after the version handshake.
type InitMessage struct {
	ClientName string
	AuthToken  map[string]interface{}
}

// NewInitMessage gets a new InitMessage struct. An empty user means no
// authentication, otherwise the basic auth scheme is used.
func NewInitMessage(clientName, user, password string) InitMessage {
	token := map[string]interface{}{"scheme": "none"}
	if user != "" {
		token = map[string]interface{}{
			"scheme":      "basic",
			"principal":   user,
			"credentials": password,
		}
	}
	return InitMessage{ClientName: clientName, AuthToken: token}
}

// Signature gets the signature byte for the struct
func (i InitMessage) Signature() int {
	return InitMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i InitMessage) AllFields() []interface{} {
	return []interface{}{i.ClientName, i.AuthToken}
}

// RunMessage asks the server to execute a statement with the given
// named parameters. The server answers with the result's field names.
type RunMessage struct {
	Statement  string
	Parameters map[string]interface{}
}

// NewRunMessage gets a new RunMessage struct
func NewRunMessage(statement string, parameters map[string]interface{}) RunMessage {
	return RunMessage{Statement: statement, Parameters: parameters}
}

// Signature gets the signature byte for the struct
func (r RunMessage) Signature() int {
	return RunMessageSignature
}

// AllFields gets the fields to encode for the struct
func (r RunMessage) AllFields() []interface{} {
	params := r.Parameters
	if params == nil {
		params = map[string]interface{}{}
	}
	return []interface{}{r.Statement, params}
}

// PullAllMessage asks the server to stream every remaining row of the
// most recently executed statement, followed by a summary.
type PullAllMessage struct{}

// NewPullAllMessage gets a new PullAllMessage struct
func NewPullAllMessage() PullAllMessage {
	return PullAllMessage{}
}

// Signature gets the signature byte for the struct
func (p PullAllMessage) Signature() int {
	return PullAllMessageSignature
}

// AllFields gets the fields to encode for the struct
func (p PullAllMessage) AllFields() []interface{} {
	return []interface{}{}
}

// DiscardAllMessage asks the server to throw away every remaining row
// of the most recently executed statement.
type DiscardAllMessage struct{}

// NewDiscardAllMessage gets a new DiscardAllMessage struct
func NewDiscardAllMessage() DiscardAllMessage {
	return DiscardAllMessage{}
}

// Signature gets the signature byte for the struct
func (d DiscardAllMessage) Signature() int {
	return DiscardAllMessageSignature
}

// AllFields gets the fields to encode for the struct
func (d DiscardAllMessage) AllFields() []interface{} {
	return []interface{}{}
}

// AckFailureMessage acknowledges a FAILURE so the server will accept
// new requests again.
type AckFailureMessage struct{}

// NewAckFailureMessage gets a new AckFailureMessage struct
func NewAckFailureMessage() AckFailureMessage {
	return AckFailureMessage{}
}

// Signature gets the signature byte for the struct
func (a AckFailureMessage) Signature() int {
	return AckFailureMessageSignature
}

// AllFields gets the fields to encode for the struct
func (a AckFailureMessage) AllFields() []interface{} {
	return []interface{}{}
}

// ResetMessage returns the server to a clean state, discarding any
// outstanding failure and any buffered results.
type ResetMessage struct{}

// NewResetMessage gets a new ResetMessage struct
func NewResetMessage() ResetMessage {
	return ResetMessage{}
}

// Signature gets the signature byte for the struct
func (r ResetMessage) Signature() int {
	return ResetMessageSignature
}

// AllFields gets the fields to encode for the struct
func (r ResetMessage) AllFields() []interface{} {
	return []interface{}{}
}

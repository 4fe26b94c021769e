package messages

import "fmt"

// Signature bytes for the server-to-client messages of Bolt v1
const (
	// SuccessMessageSignature is the signature byte for the SUCCESS message
	SuccessMessageSignature = 0x70
	// RecordMessageSignature is the signature byte for the RECORD message
	RecordMessageSignature = 0x71
	// IgnoredMessageSignature is the signature byte for the IGNORED message
	IgnoredMessageSignature = 0x7E
	// FailureMessageSignature is the signature byte for the FAILURE message
	FailureMessageSignature = 0x7F
)

// SuccessMessage terminates a response successfully. For a RUN request
// the metadata carries the result's field names under "fields"; for a
// PULL_ALL request it carries the summary.
type SuccessMessage struct {
	Metadata map[string]interface{}
}

// NewSuccessMessage gets a new SuccessMessage struct
func NewSuccessMessage(metadata map[string]interface{}) SuccessMessage {
	return SuccessMessage{Metadata: metadata}
}

// Signature gets the signature byte for the struct
func (s SuccessMessage) Signature() int {
	return SuccessMessageSignature
}

// AllFields gets the fields to encode for the struct
func (s SuccessMessage) AllFields() []interface{} {
	return []interface{}{s.Metadata}
}

// RecordMessage carries one result row as raw positional values.
type RecordMessage struct {
	Values []interface{}
}

// NewRecordMessage gets a new RecordMessage struct
func NewRecordMessage(values []interface{}) RecordMessage {
	return RecordMessage{Values: values}
}

// Signature gets the signature byte for the struct
func (r RecordMessage) Signature() int {
	return RecordMessageSignature
}

// AllFields gets the fields to encode for the struct
func (r RecordMessage) AllFields() []interface{} {
	return []interface{}{r.Values}
}

// FailureMessage terminates a response with a server-side error. The
// metadata conventionally carries "code" and "message" entries.
type FailureMessage struct {
	Metadata map[string]interface{}
}

// NewFailureMessage gets a new FailureMessage struct
func NewFailureMessage(metadata map[string]interface{}) FailureMessage {
	return FailureMessage{Metadata: metadata}
}

// Signature gets the signature byte for the struct
func (f FailureMessage) Signature() int {
	return FailureMessageSignature
}

// AllFields gets the fields to encode for the struct
func (f FailureMessage) AllFields() []interface{} {
	return []interface{}{f.Metadata}
}

// Error makes a FailureMessage usable as an error when it needs to be
// wrapped directly.
func (f FailureMessage) Error() string {
	return fmt.Sprintf("server failure: %#v", f.Metadata)
}

// IgnoredMessage terminates a response that the server skipped because
// an earlier request in the pipeline failed.
type IgnoredMessage struct{}

// NewIgnoredMessage gets a new IgnoredMessage struct
func NewIgnoredMessage() IgnoredMessage {
	return IgnoredMessage{}
}

// Signature gets the signature byte for the struct
func (i IgnoredMessage) Signature() int {
	return IgnoredMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i IgnoredMessage) AllFields() []interface{} {
	return []interface{}{}
}

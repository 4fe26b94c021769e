package bolt

import "fmt"

// UnsupportedSchemeError is returned when a driver is constructed with
// a connection URL whose scheme is not "bolt". It is raised before any
// network activity.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("Unsupported connection string scheme: %s. Driver only supports 'bolt' scheme.", e.Scheme)
}

// QueryFailureError is returned when the server reports a failure for
// either the statement execution or the result stream. The server's
// failure metadata is carried as-is.
type QueryFailureError struct {
	Metadata map[string]interface{}
}

func (e *QueryFailureError) Error() string {
	code, message := e.Code(), e.Message()
	if code == "" && message == "" {
		return fmt.Sprintf("Neo4j reported a failure for the query: %#v", e.Metadata)
	}
	return fmt.Sprintf("Neo4j reported a failure for the query: %s (%s)", message, code)
}

// Code returns the server's failure code, when one was reported.
func (e *QueryFailureError) Code() string {
	code, _ := e.Metadata["code"].(string)
	return code
}

// Message returns the server's failure message, when one was reported.
func (e *QueryFailureError) Message() string {
	message, _ := e.Metadata["message"].(string)
	return message
}

// InvariantViolationError is returned on misuse of the session or
// transaction state machine, such as opening a second transaction
// while one is still open or operating on a closed transaction. It
// indicates a programming error, not a transient failure.
type InvariantViolationError struct {
	reason string
}

func newInvariantViolation(format string, args ...interface{}) *InvariantViolationError {
	return &InvariantViolationError{reason: fmt.Sprintf(format, args...)}
}

func (e *InvariantViolationError) Error() string {
	return e.reason
}

// FieldNotFoundError is returned when a record is indexed by a field
// name it does not contain.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("No field %q in record", e.Field)
}

// IndexTypeError is returned when a record is indexed by a key that is
// neither an integer position nor a field name.
type IndexTypeError struct {
	Key interface{}
}

func (e *IndexTypeError) Error() string {
	return fmt.Sprintf("Cannot index record with %T %v, want an integer or a string", e.Key, e.Key)
}

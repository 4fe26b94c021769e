package bolt

// Transaction brackets a sequence of Run calls between BEGIN and a
// final COMMIT or ROLLBACK. Committing and rolling back are expressed
// as ordinary statement execution through the owning session, so the
// transaction layer adds no wire behavior of its own, only a guarded
// state machine.
//
// A transaction starts open and unsuccessful. Commit and Rollback set
// the success flag and close; Close issues COMMIT when the
// transaction was marked successful and ROLLBACK otherwise. Every
// operation on a closed transaction fails with an
// InvariantViolationError.
type Transaction struct {
	session *Session
	success bool
	closed  bool
}

// Run executes a statement within the context of this transaction.
func (t *Transaction) Run(statement string, parameters map[string]interface{}) ([]Record, error) {
	if t.closed {
		return nil, newInvariantViolation("transaction already closed")
	}
	return t.session.Run(statement, parameters)
}

// Commit marks the transaction successful and closes it, triggering a
// COMMIT.
func (t *Transaction) Commit() error {
	if t.closed {
		return newInvariantViolation("transaction already closed")
	}
	t.success = true
	return t.Close()
}

// Rollback marks the transaction unsuccessful and closes it,
// triggering a ROLLBACK.
func (t *Transaction) Rollback() error {
	if t.closed {
		return newInvariantViolation("transaction already closed")
	}
	t.success = false
	return t.Close()
}

// Close closes the transaction, issuing either COMMIT or ROLLBACK
// depending on whether it was marked successful, and frees the
// session's transaction slot.
func (t *Transaction) Close() error {
	if t.closed {
		return newInvariantViolation("transaction already closed")
	}

	statement := "ROLLBACK"
	if t.success {
		statement = "COMMIT"
	}
	_, err := t.session.Run(statement, nil)

	t.closed = true
	t.session.tx = nil
	return err
}

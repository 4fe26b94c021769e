package structures

// Structure is any value that crosses the Bolt stream as a PackStream
// structure: a signature byte followed by a fixed list of fields.
type Structure interface {
	// Signature gets the signature byte for the structure
	Signature() int
	// AllFields gets the fields to encode for the structure
	AllFields() []interface{}
}

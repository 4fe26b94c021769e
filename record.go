package bolt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/graphbolt/golang-neo4j-bolt-session/errors"
)

// Record is a read-only view over one result row: ordered field names
// plus the hydrated value at each position. Records are immutable once
// constructed; the accessors hand out copies of the backing slices.
type Record struct {
	fields []string
	values []interface{}
	index  map[string]int
}

// NewRecord builds a record from field names and positional values.
// Both slices are copied, and a name-to-position table is built once
// here so lookups by name don't scan.
func NewRecord(fields []string, values []interface{}) Record {
	r := Record{
		fields: append([]string(nil), fields...),
		values: append([]interface{}(nil), values...),
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range r.fields {
		r.index[field] = i
	}
	return r
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// Fields returns the record's field names in order.
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Values returns the record's values in field order.
func (r Record) Values() []interface{} {
	return append([]interface{}(nil), r.values...)
}

// GetByIndex returns the value at the given position.
func (r Record) GetByIndex(i int) (interface{}, error) {
	if i < 0 || i >= len(r.values) {
		return nil, errors.New("Record index %d out of range, record has %d fields", i, len(r.fields))
	}
	return r.values[i], nil
}

// GetByName returns the value for the given field name.
func (r Record) GetByName(field string) (interface{}, error) {
	i, ok := r.index[field]
	if !ok {
		return nil, &FieldNotFoundError{Field: field}
	}
	return r.values[i], nil
}

// Get looks a value up by either an integer position or a field name.
// Any other key kind fails with an IndexTypeError.
func (r Record) Get(key interface{}) (interface{}, error) {
	switch k := key.(type) {
	case int:
		return r.GetByIndex(k)
	case int8:
		return r.GetByIndex(int(k))
	case int16:
		return r.GetByIndex(int(k))
	case int32:
		return r.GetByIndex(int(k))
	case int64:
		return r.GetByIndex(int(k))
	case uint:
		return r.GetByIndex(int(k))
	case uint8:
		return r.GetByIndex(int(k))
	case uint16:
		return r.GetByIndex(int(k))
	case uint32:
		return r.GetByIndex(int(k))
	case uint64:
		return r.GetByIndex(int(k))
	case string:
		return r.GetByName(k)
	default:
		return nil, &IndexTypeError{Key: key}
	}
}

// Equal reports whether two records have the same fields bound to the
// same values, in the same order.
func (r Record) Equal(other Record) bool {
	return reflect.DeepEqual(r.fields, other.fields) &&
		reflect.DeepEqual(r.values, other.values)
}

// EqualValues reports whether the record's values match the given
// positional values, ignoring field names.
func (r Record) EqualValues(values []interface{}) bool {
	return reflect.DeepEqual(r.values, values)
}

// String renders each name=value pair in field order.
func (r Record) String() string {
	pairs := make([]string, len(r.fields))
	for i, field := range r.fields {
		pairs[i] = fmt.Sprintf("%s=%v", field, r.values[i])
	}
	return "Record(" + strings.Join(pairs, " ") + ")"
}

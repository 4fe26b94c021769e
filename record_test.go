package bolt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLookups(t *testing.T) {
	record := NewRecord([]string{"name", "age"}, []interface{}{"alice", int64(30)})

	value, err := record.GetByName("name")
	require.NoError(t, err)
	assert.Equal(t, "alice", value)

	value, err = record.GetByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), value)

	// Get accepts every integer width as a position.
	value, err = record.Get(uint8(1))
	require.NoError(t, err)
	assert.Equal(t, int64(30), value)
}

func TestRecordUnknownField(t *testing.T) {
	record := NewRecord([]string{"x"}, []interface{}{int64(1)})

	_, err := record.GetByName("y")
	var notFound *FieldNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "y", notFound.Field)
}

func TestRecordIndexOutOfRange(t *testing.T) {
	record := NewRecord([]string{"x"}, []interface{}{int64(1)})

	_, err := record.GetByIndex(1)
	require.Error(t, err)
	_, err = record.GetByIndex(-1)
	require.Error(t, err)
}

func TestRecordBadKeyType(t *testing.T) {
	record := NewRecord([]string{"x"}, []interface{}{int64(1)})

	_, err := record.Get(2.5)
	var badKey *IndexTypeError
	require.ErrorAs(t, err, &badKey)
	assert.Equal(t, 2.5, badKey.Key)
}

func TestRecordEqual(t *testing.T) {
	a := NewRecord([]string{"x", "y"}, []interface{}{int64(1), "two"})
	b := NewRecord([]string{"x", "y"}, []interface{}{int64(1), "two"})
	c := NewRecord([]string{"y", "x"}, []interface{}{int64(1), "two"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	assert.True(t, a.EqualValues([]interface{}{int64(1), "two"}))
	assert.True(t, c.EqualValues([]interface{}{int64(1), "two"}))
	assert.False(t, a.EqualValues([]interface{}{int64(1)}))
}

func TestRecordImmutable(t *testing.T) {
	fields := []string{"x"}
	values := []interface{}{int64(1)}
	record := NewRecord(fields, values)

	// Mutating the inputs after construction changes nothing.
	fields[0] = "changed"
	values[0] = int64(99)
	assert.Equal(t, []string{"x"}, record.Fields())
	assert.True(t, record.EqualValues([]interface{}{int64(1)}))

	// Accessors hand out copies, not the backing slices.
	record.Fields()[0] = "changed"
	record.Values()[0] = int64(99)
	assert.Equal(t, []string{"x"}, record.Fields())
	assert.True(t, record.EqualValues([]interface{}{int64(1)}))
}

func TestRecordString(t *testing.T) {
	record := NewRecord([]string{"x", "y"}, []interface{}{int64(1), "two"})
	assert.Equal(t, "Record(x=1 y=two)", record.String())
}

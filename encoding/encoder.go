package encoding

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/graphbolt/golang-neo4j-bolt-session/errors"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures"
)

// Encoder encodes Go values to the chunked Bolt stream. A message's
// bytes are split into chunks of at most the configured size, each
// prefixed with a big-endian uint16 length, and the whole message is
// terminated by a zero-length chunk.
type Encoder struct {
	w    io.Writer
	buf  []byte
	n    int
	size int
}

// NewEncoder initializes a new Encoder with the provided chunk size.
func NewEncoder(w io.Writer, size uint16) *Encoder {
	return &Encoder{w: w, buf: make([]byte, size), size: int(size)}
}

// Marshal encodes a single value to Bolt chunked bytes.
func Marshal(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	err := NewEncoder(&b, math.MaxUint16).Encode(v)
	return b.Bytes(), err
}

// Encode encodes an object to the stream and terminates the message.
func (e *Encoder) Encode(val interface{}) error {
	if err := e.encode(val); err != nil {
		return err
	}
	return e.flush()
}

// Write buffers p, emitting full chunks as the buffer fills. It never
// returns a short count without an error.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for n < len(p) {
		m := copy(e.buf[e.n:], p[n:])
		e.n += m
		n += m
		if e.n == e.size {
			if err = e.writeChunk(); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

func (e *Encoder) writeMarker(marker uint8) error {
	_, err := e.Write([]byte{marker})
	return err
}

func (e *Encoder) write(v interface{}) error {
	return binary.Write(e, binary.BigEndian, v)
}

// flush writes out any partial chunk followed by the end-of-message
// chunk header.
func (e *Encoder) flush() error {
	if err := e.writeChunk(); err != nil {
		return err
	}
	_, err := e.w.Write(EndMessage)
	return err
}

func (e *Encoder) writeChunk() error {
	if e.n == 0 {
		return nil
	}
	if err := binary.Write(e.w, binary.BigEndian, uint16(e.n)); err != nil {
		return err
	}
	_, err := e.w.Write(e.buf[:e.n])
	e.n = 0
	return err
}

func (e *Encoder) encode(val interface{}) error {
	switch val := val.(type) {
	case nil:
		return e.writeMarker(NilMarker)
	case bool:
		if val {
			return e.writeMarker(TrueMarker)
		}
		return e.writeMarker(FalseMarker)
	case int:
		return e.encodeInt(int64(val))
	case int8:
		return e.encodeInt(int64(val))
	case int16:
		return e.encodeInt(int64(val))
	case int32:
		return e.encodeInt(int64(val))
	case int64:
		return e.encodeInt(val)
	case uint:
		return e.encodeInt(int64(val))
	case uint8:
		return e.encodeInt(int64(val))
	case uint16:
		return e.encodeInt(int64(val))
	case uint32:
		return e.encodeInt(int64(val))
	case uint64:
		if val > math.MaxInt64 {
			return errors.New("Integer too big: %d. Max integer supported: %d", val, int64(math.MaxInt64))
		}
		return e.encodeInt(int64(val))
	case float32:
		return e.encodeFloat(float64(val))
	case float64:
		return e.encodeFloat(val)
	case string:
		return e.encodeString(val)
	case []interface{}:
		return e.encodeSlice(val)
	case map[string]interface{}:
		return e.encodeMap(val)
	case structures.Structure:
		return e.encodeStructure(val)
	default:
		return errors.New("Unrecognized type when encoding data for Bolt transport: %T %+v", val, val)
	}
}

func (e *Encoder) encodeInt(val int64) error {
	switch {
	case val >= -16 && val <= math.MaxInt8:
		// TINY_INT, the marker is the value itself
		return e.write(int8(val))
	case val >= math.MinInt8 && val < -16:
		if err := e.writeMarker(Int8Marker); err != nil {
			return err
		}
		return e.write(int8(val))
	case val >= math.MinInt16 && val <= math.MaxInt16:
		if err := e.writeMarker(Int16Marker); err != nil {
			return err
		}
		return e.write(int16(val))
	case val >= math.MinInt32 && val <= math.MaxInt32:
		if err := e.writeMarker(Int32Marker); err != nil {
			return err
		}
		return e.write(int32(val))
	default:
		if err := e.writeMarker(Int64Marker); err != nil {
			return err
		}
		return e.write(val)
	}
}

func (e *Encoder) encodeFloat(val float64) error {
	if err := e.writeMarker(FloatMarker); err != nil {
		return err
	}
	return e.write(val)
}

// writeHeader writes the marker and length prefix for a string, slice,
// map or struct of the given length. tiny is the type's tiny marker;
// m8, m16 and m32 are its sized markers, m32 zero when the type has no
// 32-bit form.
func (e *Encoder) writeHeader(tiny, m8, m16, m32 uint8, length int) error {
	switch {
	case length <= 15:
		return e.writeMarker(tiny + uint8(length))
	case length <= math.MaxUint8:
		if err := e.writeMarker(m8); err != nil {
			return err
		}
		return e.write(uint8(length))
	case length <= math.MaxUint16:
		if err := e.writeMarker(m16); err != nil {
			return err
		}
		return e.write(uint16(length))
	case m32 != 0 && length <= math.MaxUint32:
		if err := e.writeMarker(m32); err != nil {
			return err
		}
		return e.write(uint32(length))
	default:
		return errors.New("Collection too long to write: %d items", length)
	}
}

func (e *Encoder) encodeString(val string) error {
	b := []byte(val)
	if err := e.writeHeader(TinyStringMarker, String8Marker, String16Marker, String32Marker, len(b)); err != nil {
		return err
	}
	_, err := e.Write(b)
	return err
}

func (e *Encoder) encodeSlice(val []interface{}) error {
	if err := e.writeHeader(TinySliceMarker, Slice8Marker, Slice16Marker, Slice32Marker, len(val)); err != nil {
		return err
	}
	for _, item := range val {
		if err := e.encode(item); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeMap(val map[string]interface{}) error {
	if err := e.writeHeader(TinyMapMarker, Map8Marker, Map16Marker, Map32Marker, len(val)); err != nil {
		return err
	}
	for k, v := range val {
		if err := e.encodeString(k); err != nil {
			return err
		}
		if err := e.encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeStructure(val structures.Structure) error {
	fields := val.AllFields()
	if err := e.writeHeader(TinyStructMarker, Struct8Marker, Struct16Marker, 0, len(fields)); err != nil {
		return err
	}
	if err := e.writeMarker(uint8(val.Signature())); err != nil {
		return errors.Wrap(err, "An error occurred writing a structure signature")
	}
	for _, field := range fields {
		if err := e.encode(field); err != nil {
			return errors.Wrap(err, "An error occurred encoding a structure field")
		}
	}
	return nil
}

package encoding

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/graphbolt/golang-neo4j-bolt-session/errors"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures/graph"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures/messages"
)

// Decoder decodes one complete message at a time from the chunked Bolt
// stream. Integers are decoded to the smallest Go type that fits the
// wire representation; callers wanting uniform widths should hydrate
// the results.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new Decoder object
func NewDecoder(r io.Reader) Decoder {
	return Decoder{r: r}
}

// Unmarshal decodes a single value from Bolt chunked bytes.
func Unmarshal(data []byte) (interface{}, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// Decode reassembles the next message from its chunks and decodes the
// value it contains.
func (d Decoder) Decode() (interface{}, error) {
	msg, err := d.readMessage()
	if err != nil {
		return nil, err
	}
	return d.decode(msg)
}

// readMessage reads chunks off the stream until the zero-length
// end-of-message chunk and returns the reassembled payload.
func (d Decoder) readMessage() (*bytes.Buffer, error) {
	msg := &bytes.Buffer{}
	var header [2]byte
	for {
		if _, err := io.ReadFull(d.r, header[:]); err != nil {
			return nil, errors.Wrap(err, "An error occurred reading a chunk header")
		}
		chunkLen := binary.BigEndian.Uint16(header[:])
		if chunkLen == 0 {
			if msg.Len() == 0 {
				// NOOP chunk, keep going until a real message arrives
				continue
			}
			return msg, nil
		}
		if _, err := io.CopyN(msg, d.r, int64(chunkLen)); err != nil {
			return nil, errors.Wrap(err, "An error occurred reading a chunk body")
		}
	}
}

func (d Decoder) decode(buffer *bytes.Buffer) (interface{}, error) {
	marker, err := buffer.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "An error occurred reading a value marker")
	}

	switch {

	// NIL
	case marker == NilMarker:
		return nil, nil

	// BOOL
	case marker == TrueMarker:
		return true, nil
	case marker == FalseMarker:
		return false, nil

	// INT
	case int8(marker) >= -16:
		// TINY_INT, the marker is the value
		return int8(marker), nil
	case marker == Int8Marker:
		var out int8
		err := binary.Read(buffer, binary.BigEndian, &out)
		return out, err
	case marker == Int16Marker:
		var out int16
		err := binary.Read(buffer, binary.BigEndian, &out)
		return out, err
	case marker == Int32Marker:
		var out int32
		err := binary.Read(buffer, binary.BigEndian, &out)
		return out, err
	case marker == Int64Marker:
		var out int64
		err := binary.Read(buffer, binary.BigEndian, &out)
		return out, err

	// FLOAT
	case marker == FloatMarker:
		var out float64
		err := binary.Read(buffer, binary.BigEndian, &out)
		return out, err

	// STRING
	case marker >= TinyStringMarker && marker <= TinyStringMarker+0x0F:
		return string(buffer.Next(int(marker - TinyStringMarker))), nil
	case marker == String8Marker || marker == String16Marker || marker == String32Marker:
		size, err := d.readSize(buffer, marker, String8Marker)
		if err != nil {
			return nil, err
		}
		return string(buffer.Next(size)), nil

	// SLICE
	case marker >= TinySliceMarker && marker <= TinySliceMarker+0x0F:
		return d.decodeSlice(buffer, int(marker-TinySliceMarker))
	case marker == Slice8Marker || marker == Slice16Marker || marker == Slice32Marker:
		size, err := d.readSize(buffer, marker, Slice8Marker)
		if err != nil {
			return nil, err
		}
		return d.decodeSlice(buffer, size)

	// MAP
	case marker >= TinyMapMarker && marker <= TinyMapMarker+0x0F:
		return d.decodeMap(buffer, int(marker-TinyMapMarker))
	case marker == Map8Marker || marker == Map16Marker || marker == Map32Marker:
		size, err := d.readSize(buffer, marker, Map8Marker)
		if err != nil {
			return nil, err
		}
		return d.decodeMap(buffer, size)

	// STRUCTURE
	case marker >= TinyStructMarker && marker <= TinyStructMarker+0x0F:
		return d.decodeStruct(buffer, int(marker-TinyStructMarker))
	case marker == Struct8Marker || marker == Struct16Marker:
		size, err := d.readSize(buffer, marker, Struct8Marker)
		if err != nil {
			return nil, err
		}
		return d.decodeStruct(buffer, size)

	default:
		return nil, errors.New("Unrecognized marker byte: %x", marker)
	}
}

// readSize reads the unsigned length prefix that follows a sized
// marker. base is the 8-bit marker of the family, so marker-base gives
// the width exponent.
func (d Decoder) readSize(buffer *bytes.Buffer, marker, base uint8) (int, error) {
	switch marker - base {
	case 0:
		var size uint8
		err := binary.Read(buffer, binary.BigEndian, &size)
		return int(size), err
	case 1:
		var size uint16
		err := binary.Read(buffer, binary.BigEndian, &size)
		return int(size), err
	default:
		var size uint32
		err := binary.Read(buffer, binary.BigEndian, &size)
		return int(size), err
	}
}

func (d Decoder) decodeSlice(buffer *bytes.Buffer, size int) ([]interface{}, error) {
	slice := make([]interface{}, size)
	for i := 0; i < size; i++ {
		item, err := d.decode(buffer)
		if err != nil {
			return nil, err
		}
		slice[i] = item
	}
	return slice, nil
}

func (d Decoder) decodeMap(buffer *bytes.Buffer, size int) (map[string]interface{}, error) {
	m := make(map[string]interface{}, size)
	for i := 0; i < size; i++ {
		keyInt, err := d.decode(buffer)
		if err != nil {
			return nil, err
		}
		val, err := d.decode(buffer)
		if err != nil {
			return nil, err
		}
		key, ok := keyInt.(string)
		if !ok {
			return nil, errors.New("Unexpected key type: %T with value %+v", keyInt, keyInt)
		}
		m[key] = val
	}
	return m, nil
}

// decodeStruct reads the signature byte and the declared number of
// fields, then maps the pair onto the known message and graph
// structures. Both request and response messages are recognized, so a
// server end of the stream can be driven by the same decoder.
func (d Decoder) decodeStruct(buffer *bytes.Buffer, size int) (interface{}, error) {
	signature, err := buffer.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "An error occurred reading a structure signature")
	}

	fields := make([]interface{}, size)
	for i := 0; i < size; i++ {
		if fields[i], err = d.decode(buffer); err != nil {
			return nil, err
		}
	}

	switch int(signature) {
	case graph.NodeSignature:
		return nodeFromFields(fields)
	case graph.RelationshipSignature:
		return relationshipFromFields(fields)
	case graph.UnboundRelationshipSignature:
		return unboundRelationshipFromFields(fields)
	case graph.PathSignature:
		return pathFromFields(fields)
	case messages.RecordMessageSignature:
		values, err := fieldAsSlice(fields, 0, "record values")
		if err != nil {
			return nil, err
		}
		return messages.NewRecordMessage(values), nil
	case messages.SuccessMessageSignature:
		metadata, err := fieldAsMap(fields, 0, "success metadata")
		if err != nil {
			return nil, err
		}
		return messages.NewSuccessMessage(metadata), nil
	case messages.FailureMessageSignature:
		metadata, err := fieldAsMap(fields, 0, "failure metadata")
		if err != nil {
			return nil, err
		}
		return messages.NewFailureMessage(metadata), nil
	case messages.IgnoredMessageSignature:
		return messages.NewIgnoredMessage(), nil
	case messages.InitMessageSignature:
		clientName, err := fieldAsString(fields, 0, "init client name")
		if err != nil {
			return nil, err
		}
		token, err := fieldAsMap(fields, 1, "init auth token")
		if err != nil {
			return nil, err
		}
		return messages.InitMessage{ClientName: clientName, AuthToken: token}, nil
	case messages.RunMessageSignature:
		statement, err := fieldAsString(fields, 0, "run statement")
		if err != nil {
			return nil, err
		}
		params, err := fieldAsMap(fields, 1, "run parameters")
		if err != nil {
			return nil, err
		}
		return messages.NewRunMessage(statement, params), nil
	case messages.PullAllMessageSignature:
		return messages.NewPullAllMessage(), nil
	case messages.DiscardAllMessageSignature:
		return messages.NewDiscardAllMessage(), nil
	case messages.AckFailureMessageSignature:
		return messages.NewAckFailureMessage(), nil
	case messages.ResetMessageSignature:
		return messages.NewResetMessage(), nil
	default:
		return nil, errors.New("Unrecognized structure with signature %x", signature)
	}
}

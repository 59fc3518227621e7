package bookmark

import (
	"encoding/binary"
	"fmt"
	"math"
)

// readTypedRecord parses the typed record at the given offset within
// dataRegion: a 4-byte length, a 4-byte type tag, then length bytes
// of payload.
//
// A malformed record - one whose declared length overflows the data region -
// is the one decode failure mode that aborts the whole record; every
// other condition here (unknown tag, bad UTF-8, etc.) is handled by the
// caller as a non-fatal default.
func readTypedRecord(dataRegion []byte, offset uint32) (typedValue, error) {
	if int(offset)+8 > len(dataRegion) {
		return typedValue{}, fmt.Errorf("typed record header at offset %d out of range (region %d bytes)", offset, len(dataRegion))
	}
	length := binary.LittleEndian.Uint32(dataRegion[offset : offset+4])
	tag := binary.LittleEndian.Uint32(dataRegion[offset+4 : offset+8])

	payloadStart := int(offset) + 8
	payloadEnd := payloadStart + int(length)
	if payloadEnd > len(dataRegion) || payloadEnd < payloadStart {
		return typedValue{}, fmt.Errorf("typed record payload at offset %d (len %d) overflows data region of %d bytes", offset, length, len(dataRegion))
	}
	payload := dataRegion[payloadStart:payloadEnd]

	return decodeTypedPayload(tag, payload)
}

// decodeTypedPayload interprets payload according to tag. It never
// returns an error: an unrecognised tag produces an Unknown variant rather
// than failing the decode.
func decodeTypedPayload(tag uint32, payload []byte) (typedValue, error) {
	switch tag {
	case typeString, typeURL:
		return typedValue{Tag: tag, Str: string(payload)}, nil
	case typeData:
		data := make([]byte, len(payload))
		copy(data, payload)
		return typedValue{Tag: tag, Data: data}, nil
	case typeInt32:
		if len(payload) < 4 {
			return typedValue{Tag: tag}, nil
		}
		return typedValue{Tag: tag, Int32: int32(binary.LittleEndian.Uint32(payload))}, nil
	case typeInt64:
		if len(payload) < 8 {
			return typedValue{Tag: tag}, nil
		}
		return typedValue{Tag: tag, Int64: int64(binary.LittleEndian.Uint64(payload))}, nil
	case typeDate:
		return typedValue{Tag: tag, Date: decodeDate(payload)}, nil
	case typeBoolean:
		return typedValue{Tag: tag, Bool: true}, nil
	case typeArray:
		return typedValue{Tag: tag, Offsets: decodeOffsetArray(payload)}, nil
	default:
		data := make([]byte, len(payload))
		copy(data, payload)
		return typedValue{Tag: tag, Unknown: Unknown{Tag: tag, Bytes: data}}, nil
	}
}

// decodeDate decodes the one big-endian field in an otherwise little-endian
// format: Cocoa-epoch timestamps are stored as big-endian IEEE-754 doubles.
// Isolated here so every other helper in this package can stay uniformly
// little-endian.
func decodeDate(payload []byte) float64 {
	if len(payload) < 8 {
		return 0
	}
	bits := binary.BigEndian.Uint64(payload[:8])
	return math.Float64frombits(bits)
}

// decodeOffsetArray reads a packed sequence of little-endian 32-bit offsets
// with no count prefix - the element count is implied by payload length / 4.
func decodeOffsetArray(payload []byte) []uint32 {
	n := len(payload) / 4
	offsets := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		offsets = append(offsets, binary.LittleEndian.Uint32(payload[i*4:i*4+4]))
	}
	return offsets
}

// decodeFlagTriple decodes up to three little-endian u64 values from a Data
// payload, stopping at maxFlagTripleLen elements or when the payload is
// exhausted, whichever comes first.
func decodeFlagTriple(payload []byte) []uint64 {
	var flags []uint64
	for len(payload) >= 8 && len(flags) < maxFlagTripleLen {
		flags = append(flags, binary.LittleEndian.Uint64(payload[:8]))
		payload = payload[8:]
	}
	return flags
}

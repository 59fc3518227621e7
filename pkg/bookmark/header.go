package bookmark

import "encoding/binary"

// header is the fixed 48-byte preamble of a Bookmark payload.
type header struct {
	Signature  uint32
	TotalLen   uint32
	Version    uint32
	DataOffset uint32
}

// parseHeader reads the 48-byte header from the start of data.
//
// ok is false when data is too short to even contain a header; it is not an
// error, since the locator over-approximates candidates and short blobs are
// routinely encountered in keyed-archive metadata.
func parseHeader(data []byte) (hdr header, ok bool) {
	if len(data) < headerSize {
		return header{}, false
	}
	hdr.Signature = binary.LittleEndian.Uint32(data[0:4])
	hdr.TotalLen = binary.LittleEndian.Uint32(data[4:8])
	hdr.Version = binary.BigEndian.Uint32(data[8:12])
	hdr.DataOffset = binary.LittleEndian.Uint32(data[12:16])
	// bytes [16:48) are reserved and ignored.
	return hdr, true
}

// valid reports whether the header passes the signature/offset check that
// determines whether a blob is even a bookmark candidate. A false
// result means "silently reject", not "error".
func (h header) valid() bool {
	return h.Signature == headerSignature && h.DataOffset == headerDataOffset
}

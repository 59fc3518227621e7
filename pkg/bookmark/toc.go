package bookmark

import (
	"encoding/binary"
	"fmt"
)

// tocEntry is one 12-byte entry in the Table of Contents record table
//: a key, and the offset (from the start of the data region) of the
// typed record it refers to.
type tocEntry struct {
	Key        uint32
	DataOffset uint32
}

// readTOC locates and parses the Table of Contents inside dataRegion.
//
// dataRegion is the full data region immediately following the 48-byte
// header, including its own leading 4-byte TOC-offset field. Every
// tocEntry.DataOffset returned is an index directly into this same slice -
// keeping one base slice for the whole decode avoids having to separately
// track the record heap's offset from the data region.
func readTOC(dataRegion []byte) ([]tocEntry, error) {
	if len(dataRegion) < 4 {
		return nil, fmt.Errorf("data region too short for TOC offset field: %d bytes", len(dataRegion))
	}
	tocOffset := binary.LittleEndian.Uint32(dataRegion[0:4])

	if int(tocOffset) < 4 || int(tocOffset) > len(dataRegion) {
		return nil, fmt.Errorf("TOC offset %d out of range for data region of %d bytes", tocOffset, len(dataRegion))
	}
	toc := dataRegion[tocOffset:]

	// TOC header: data_length(u32 LE), record_type(u16 LE), flags(u16 LE).
	if len(toc) < 8 {
		return nil, fmt.Errorf("TOC header truncated: %d bytes", len(toc))
	}
	toc = toc[8:] // record_type/flags carry a 0xFFFE/0xFFFF magic we do not validate

	// TOC body: level(u32 LE), next_record_offset(u32 LE), number_of_records(u32 LE).
	if len(toc) < 12 {
		return nil, fmt.Errorf("TOC body truncated: %d bytes", len(toc))
	}
	numRecords := binary.LittleEndian.Uint32(toc[8:12])
	toc = toc[12:]

	// Some TOC headers report a data_length 8 bytes shorter than the actual
	// record block. This decoder always trusts number_of_records*12 and
	// ignores the reported data_length entirely.
	recordBlockLen := int(numRecords) * tocRecordHeaderSize
	if recordBlockLen > len(toc) {
		return nil, fmt.Errorf("TOC declares %d records (%d bytes) but only %d bytes remain", numRecords, recordBlockLen, len(toc))
	}

	entries := make([]tocEntry, 0, numRecords)
	for i := 0; i < int(numRecords); i++ {
		rec := toc[i*tocRecordHeaderSize : (i+1)*tocRecordHeaderSize]
		entries = append(entries, tocEntry{
			Key:        binary.LittleEndian.Uint32(rec[0:4]),
			DataOffset: binary.LittleEndian.Uint32(rec[4:8]),
			// rec[8:12] is reserved and ignored.
		})
	}
	return entries, nil
}

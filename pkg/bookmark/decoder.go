// Package bookmark implements a decoder for Apple's undocumented Bookmark
// binary format: the blob embedded in Login Items plists that describes a
// target file by volume and catalog identifiers rather than by path alone.
//
// The decoder is fully synchronous and allocates only while materialising a
// Record; it touches no filesystem state and is safe to call concurrently
// from multiple goroutines over independent inputs.
package bookmark

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-logr/logr"
)

// ctx carries the per-decode logger and the array-resolution depth limit
// through the dispatch helpers below.
type ctx struct {
	logger   logr.Logger
	maxDepth int
}

// Decode parses one candidate byte sequence into a Record using the default
// array-resolution depth limit. See DecodeWithDepth for a configurable
// variant.
//
// A nil Record with a nil error means the header check rejected the blob as
// not a bookmark at all (bad signature or unexpected data offset) - this is
// the locator's over-approximation at work, not a failure. A non-nil
// error means the blob passed the header check but failed structural
// decoding; callers should treat this as the one fatal decode error for the
// containing document.
func Decode(data []byte, logger logr.Logger) (*Record, error) {
	return DecodeWithDepth(data, logger, maxArrayResolutionDepth)
}

// DecodeWithDepth is Decode with an explicit array-resolution depth limit
// (the Scanner's WithMaxArrayDepth option uses this). A non-positive
// maxDepth falls back to the package default.
func DecodeWithDepth(data []byte, logger logr.Logger, maxDepth int) (*Record, error) {
	if maxDepth <= 0 {
		maxDepth = maxArrayResolutionDepth
	}
	c := ctx{logger: logger, maxDepth: maxDepth}

	hdr, ok := parseHeader(data)
	if !ok || !hdr.valid() {
		return nil, nil
	}

	dataRegion := data[headerSize:]
	entries, err := readTOC(dataRegion)
	if err != nil {
		return nil, fmt.Errorf("reading table of contents: %w", err)
	}

	b := newRecordBuilder()
	for _, entry := range entries {
		value, err := readTypedRecord(dataRegion, entry.DataOffset)
		if err != nil {
			return nil, fmt.Errorf("reading record for key 0x%04X: %w", entry.Key, err)
		}
		c.applyEntry(b, dataRegion, entry.Key, value)
	}

	rec := b.finish()
	return &rec, nil
}

// applyEntry dispatches one decoded TOC entry to its populator. A type/key
// mismatch leaves the field at its default and logs a non-fatal warning; it
// never aborts the decode.
func (c ctx) applyEntry(b *recordBuilder, dataRegion []byte, key uint32, value typedValue) {
	switch key {
	case keyTargetPath:
		b.rec.PathComponents = c.resolveArrayStrings(dataRegion, value, 1, keyTargetPath)
	case keyTargetCNIDPath:
		b.rec.CNIDPath = c.resolveArrayInt64(dataRegion, value, 1, keyTargetCNIDPath)
	case keyTargetFlags:
		if c.expectData(value, key) {
			b.rec.TargetFlags = decodeFlagTriple(value.Data)
		}
	case keyTargetCreationDate:
		if c.expectDate(value, key) {
			b.rec.TargetCreation = value.Date
		}
	case keyVolumePath:
		if s, ok := c.expectString(value, key); ok {
			b.rec.VolumePath = s
		}
	case keyVolumeURL:
		if s, ok := c.expectString(value, key); ok {
			b.rec.VolumeURL = s
		}
	case keyVolumeName:
		if s, ok := c.expectString(value, key); ok {
			b.rec.VolumeName = s
		}
	case keyVolumeUUID:
		if s, ok := c.expectString(value, key); ok {
			b.rec.VolumeUUID = s
		}
	case keyVolumeSize:
		if value.Tag == typeInt64 {
			b.rec.VolumeSize = value.Int64
		} else {
			c.logTypeMismatch(key, value.Tag)
		}
	case keyVolumeCreationDate:
		if c.expectDate(value, key) {
			b.rec.VolumeCreation = value.Date
		}
	case keyVolumeFlags:
		if c.expectData(value, key) {
			b.rec.VolumeFlags = decodeFlagTriple(value.Data)
		}
	case keyVolumeIsRoot:
		if value.Tag == typeBoolean {
			b.rec.VolumeRoot = true
		} else {
			c.logTypeMismatch(key, value.Tag)
		}
	case keyContainingFolderIdx:
		if value.Tag == typeInt32 {
			b.rec.FolderIndex = value.Int32
		} else {
			c.logTypeMismatch(key, value.Tag)
		}
	case keyCreatorUsername:
		if s, ok := c.expectString(value, key); ok {
			b.rec.Username = s
		}
	case keyCreatorUID:
		if value.Tag == typeInt32 {
			b.rec.UID = value.Int32
		} else {
			c.logTypeMismatch(key, value.Tag)
		}
	case keyFileReferenceFlag:
		// The exact record encoding for this key varies across older
		// artifacts; its mere presence in the TOC is treated as true
		// regardless of the referenced record's payload.
		b.rec.FileRefFlag = true
	case keyCreationOptions:
		if value.Tag == typeInt32 {
			b.rec.CreationOptions = value.Int32
		} else {
			c.logTypeMismatch(key, value.Tag)
		}
	case keyLocalizedName:
		if s, ok := c.expectString(value, key); ok {
			b.rec.LocalizedName = s
		}
	case keySandboxRWExtension:
		if c.expectData(value, key) {
			if s, ok := validUTF8(string(value.Data)); ok {
				b.rec.SecurityExtensionRW = s
			}
		}
	case keySandboxROExtension:
		if c.expectData(value, key) {
			if s, ok := validUTF8(string(value.Data)); ok {
				b.rec.SecurityExtensionRO = s
			}
		}
	default:
		c.logger.V(2).Info("unrecognised TOC key", "key", fmt.Sprintf("0x%04X", key), "type", value.Tag)
	}
}

func (c ctx) expectString(value typedValue, key uint32) (string, bool) {
	if value.Tag != typeString && value.Tag != typeURL {
		c.logTypeMismatch(key, value.Tag)
		return "", false
	}
	return validUTF8(value.Str)
}

func (c ctx) expectData(value typedValue, key uint32) bool {
	if value.Tag != typeData {
		c.logTypeMismatch(key, value.Tag)
		return false
	}
	return true
}

func (c ctx) expectDate(value typedValue, key uint32) bool {
	if value.Tag != typeDate {
		c.logTypeMismatch(key, value.Tag)
		return false
	}
	return true
}

// validUTF8 guards against malformed UTF-8 in an optional string field: it is
// left empty rather than failing the decode.
func validUTF8(s string) (string, bool) {
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

func (c ctx) logTypeMismatch(key uint32, gotTag uint32) {
	c.logger.V(1).Info("TOC entry type/key mismatch", "key", fmt.Sprintf("0x%04X", key), "type", fmt.Sprintf("0x%04X", gotTag))
}

// resolveArrayStrings resolves an array-of-offsets record into its string
// leaves, used for the target path-components array.
func (c ctx) resolveArrayStrings(dataRegion []byte, arr typedValue, depth int, key uint32) []string {
	if arr.Tag != typeArray {
		c.logTypeMismatch(key, arr.Tag)
		return nil
	}
	if depth > c.maxDepth {
		c.logger.V(1).Info("array resolution depth limit reached", "key", fmt.Sprintf("0x%04X", key))
		return nil
	}
	var out []string
	for _, off := range arr.Offsets {
		v, err := readTypedRecord(dataRegion, off)
		if err != nil {
			c.logger.V(1).Info("array element out of range", "offset", off, "error", err.Error())
			continue
		}
		if v.Tag == typeArray {
			out = append(out, c.resolveArrayStrings(dataRegion, v, depth+1, key)...)
			continue
		}
		if v.Tag != typeString && v.Tag != typeURL {
			c.logger.V(1).Info("array element type mismatch, expected string", "type", fmt.Sprintf("0x%04X", v.Tag))
			continue
		}
		if s, ok := validUTF8(v.Str); ok {
			out = append(out, s)
		}
	}
	return out
}

// resolveArrayInt64 resolves an array-of-offsets record into its 8-byte
// integer leaves, used for the CNID-path array.
func (c ctx) resolveArrayInt64(dataRegion []byte, arr typedValue, depth int, key uint32) []int64 {
	if arr.Tag != typeArray {
		c.logTypeMismatch(key, arr.Tag)
		return nil
	}
	if depth > c.maxDepth {
		c.logger.V(1).Info("array resolution depth limit reached", "key", fmt.Sprintf("0x%04X", key))
		return nil
	}
	var out []int64
	for _, off := range arr.Offsets {
		v, err := readTypedRecord(dataRegion, off)
		if err != nil {
			c.logger.V(1).Info("array element out of range", "offset", off, "error", err.Error())
			continue
		}
		if v.Tag == typeArray {
			out = append(out, c.resolveArrayInt64(dataRegion, v, depth+1, key)...)
			continue
		}
		if v.Tag != typeInt64 && v.Tag != typeInt32 {
			c.logger.V(1).Info("array element type mismatch, expected integer", "type", fmt.Sprintf("0x%04X", v.Tag))
			continue
		}
		if v.Tag == typeInt64 {
			out = append(out, v.Int64)
		} else {
			out = append(out, int64(v.Int32))
		}
	}
	return out
}

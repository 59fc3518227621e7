package plist

import "sort"

// minBookmarkSize is the fixed Bookmark header size; a nested blob
// shorter than this cannot possibly be a bookmark.
const minBookmarkSize = 48

// Candidates walks the plist document at path looking for byte blobs that
// are plausible Bookmark payloads.
//
// Two shapes are recognised, both keyed off a top-level "$objects" array:
//   - A top-level array entry that is itself a byte blob is accepted
//     unconditionally, with no length check - the keyed archiver never
//     stores anything else directly at that level.
//   - A byte blob found nested one level inside a dictionary value is a
//     candidate only if it is at least minBookmarkSize bytes; shorter nested
//     blobs are keyed-archive metadata, not bookmarks, and are silently
//     skipped.
//
// A document with no "$objects" key yields an empty, non-error result.
func Candidates(path string) ([][]byte, error) {
	root, err := Load(path)
	if err != nil {
		return nil, err
	}

	top, ok := root.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	objects, ok := top["$objects"]
	if !ok {
		return nil, nil
	}
	arr, ok := objects.([]interface{})
	if !ok {
		return nil, nil
	}

	var candidates [][]byte
	for _, entry := range arr {
		switch v := entry.(type) {
		case []byte:
			candidates = append(candidates, v)
		case map[string]interface{}:
			candidates = append(candidates, nestedCandidates(v)...)
		}
	}
	return candidates, nil
}

// nestedCandidates inspects each value of a dictionary found inside
// "$objects" for a Data blob long enough to be a bookmark. Keys are visited
// in sorted order so traversal - and therefore the resulting candidate
// order - is deterministic regardless of map iteration.
func nestedCandidates(dict map[string]interface{}) [][]byte {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out [][]byte
	for _, k := range keys {
		data, ok := dict[k].([]byte)
		if !ok || len(data) < minBookmarkSize {
			continue
		}
		out = append(out, data)
	}
	return out
}

// Package plist adapts howett.net/plist into the generic "plist envelope
// reader" the bookmark locator consumes: given a path, it loads a
// property-list document - binary or XML, autodetected - as a dynamically
// typed tree of maps, slices, and scalars.
package plist

import (
	"fmt"
	"os"

	applist "howett.net/plist"
)

// Load reads and parses the plist document at path, returning its top-level
// value (typically a map[string]interface{} for keyed-archiver documents).
func Load(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var root interface{}
	if _, err := applist.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing plist %q: %w", path, err)
	}
	return root, nil
}

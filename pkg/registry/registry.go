// Package registry reads the bundled-app registration plists found under a
// launchd bookkeeping directory: per-application plists that map a
// helper binary identifier to an application identifier, with no bookmark
// data involved at all.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bgrewell/loginitems-kit/pkg/bookmark"
	"github.com/bgrewell/loginitems-kit/pkg/plist"
	"github.com/go-logr/logr"
)

// Document is one discovered registration plist file and the bundled records
// it produced.
type Document struct {
	SourcePath string
	Records    []bookmark.Record
}

// ReadDirectory enumerates entries of dir whose name contains the substring
// "loginitems", parses each as a plist, and emits one Document per file.
//
// A directory that cannot be opened is the one fatal condition here. A file
// that fails to parse as a plist, or whose top level is not a dictionary, is
// skipped with a logged warning rather than aborting the scan; within a file,
// a key whose value is not a string is skipped the same way and the file's
// other keys are kept.
func ReadDirectory(dir string, logger logr.Logger) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), "loginitems") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		records, err := readRegistrationFile(path, logger)
		if err != nil {
			logger.V(1).Info("skipping unreadable bundled-app registration file", "path", path, "error", err.Error())
			continue
		}
		docs = append(docs, Document{SourcePath: path, Records: records})
	}
	return docs, nil
}

func readRegistrationFile(path string, logger logr.Logger) ([]bookmark.Record, error) {
	root, err := plist.Load(path)
	if err != nil {
		return nil, err
	}
	dict, ok := root.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("top-level plist value in %q is not a dictionary", path)
	}

	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var records []bookmark.Record
	for _, key := range keys {
		if strings.HasPrefix(key, "version") {
			continue
		}
		appID, ok := dict[key].(string)
		if !ok {
			logger.V(1).Info("skipping bundled-app entry with non-string value", "path", path, "key", key)
			continue
		}
		records = append(records, bookmark.Record{
			IsBundled: true,
			AppBinary: key,
			AppID:     appID,
		})
	}
	return records, nil
}

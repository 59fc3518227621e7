// Package loginitems reads macOS Login Items persistence artifacts -
// per-user background-task-management plists, shared-file-list plists, and
// per-application launchd registration plists - and produces structured
// records of what each item points to.
package loginitems

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bgrewell/loginitems-kit/pkg/bookmark"
	"github.com/bgrewell/loginitems-kit/pkg/plist"
	"github.com/bgrewell/loginitems-kit/pkg/registry"
	"github.com/go-logr/logr"
)

// defaultBundledDirectory is the launchd bookkeeping directory ScanSystem
// inspects for bundled-app registrations.
const defaultBundledDirectory = "/var/db/com.apple.xpc.launchd/"

// backgroundItemsRelativePath is where a per-user backgrounditems.btm lives,
// relative to a /Users/<name> home directory.
const backgroundItemsRelativePath = "Library/Application Support/com.apple.backgroundtaskmanagementagent/backgrounditems.btm"

const defaultWorkerConcurrency = 8

// LoginItemRecord is one decoded bookmark, or one bundled-app registry entry.
type LoginItemRecord = bookmark.Record

// LoginItemsDocument is the result of decoding a single file, or of reading
// a single bundled-app registration plist.
type LoginItemsDocument struct {
	SourcePath string
	Items      []LoginItemRecord
}

// Options configures a Scanner. See the With* functions.
type Options struct {
	Logger            logr.Logger
	MaxArrayDepth     int
	WorkerConcurrency int
	BundledDirectory  string
}

// Option mutates Options; functional-options constructor pattern.
type Option func(*Options)

// WithLogger sets the structured logger used for non-fatal decode anomalies
// and scan progress. The zero value is logr.Discard().
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMaxArrayDepth overrides the bookmark decoder's array-resolution depth
// limit. Non-positive values restore the package default.
func WithMaxArrayDepth(depth int) Option {
	return func(o *Options) { o.MaxArrayDepth = depth }
}

// WithWorkerConcurrency bounds how many per-user documents ScanSystem decodes
// concurrently. ScanBundled reads registration files one at a time and does
// not use this setting. Non-positive values restore the package default.
func WithWorkerConcurrency(n int) Option {
	return func(o *Options) { o.WorkerConcurrency = n }
}

// WithBundledDirectory overrides the launchd bookkeeping directory
// ScanSystem reads bundled-app registrations from.
func WithBundledDirectory(dir string) Option {
	return func(o *Options) { o.BundledDirectory = dir }
}

// Scanner dispatches paths to the bookmark decoder or the bundled-app
// registry reader, and exposes the system-wide scan entry points.
type Scanner struct {
	opts Options
}

// NewScanner constructs a Scanner with the given options applied over
// defaults (discard logger, default depth limit, concurrency 8, and the
// standard launchd bookkeeping directory).
func NewScanner(opts ...Option) *Scanner {
	o := Options{
		Logger:            logr.Discard(),
		WorkerConcurrency: defaultWorkerConcurrency,
		BundledDirectory:  defaultBundledDirectory,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Scanner{opts: o}
}

// DecodeFile decodes every bookmark candidate found in the plist at path,
// producing one LoginItemsDocument. The first malformed candidate
// aborts the whole document with a BookmarkError; candidates rejected
// at the header level are silently omitted, not errors.
func (s *Scanner) DecodeFile(path string) (*LoginItemsDocument, error) {
	candidates, err := plist.Candidates(path)
	if err != nil {
		return nil, &PlistError{Path: path, Err: err}
	}

	items := make([]LoginItemRecord, 0, len(candidates))
	for i, blob := range candidates {
		rec, err := bookmark.DecodeWithDepth(blob, s.opts.Logger, s.opts.MaxArrayDepth)
		if err != nil {
			return nil, &BookmarkError{SourcePath: path, Index: i, Err: err}
		}
		if rec == nil {
			continue // header check rejected this candidate; not a bookmark
		}
		items = append(items, *rec)
	}

	return &LoginItemsDocument{SourcePath: path, Items: items}, nil
}

// Scan dispatches path to the bookmark decoder or the bundled-app registry
// reader depending on whether it names a file or a directory. A path whose
// metadata cannot be read is a fatal PathError.
func (s *Scanner) Scan(path string) ([]LoginItemsDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	if info.IsDir() {
		return s.ScanBundled(path)
	}
	doc, err := s.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return []LoginItemsDocument{*doc}, nil
}

// ScanBundled reads every per-application registration plist in dir,
// producing one LoginItemsDocument per file. A directory that cannot
// be opened is a fatal PathError.
func (s *Scanner) ScanBundled(dir string) ([]LoginItemsDocument, error) {
	found, err := registry.ReadDirectory(dir, s.opts.Logger)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}

	docs := make([]LoginItemsDocument, 0, len(found))
	for _, d := range found {
		docs = append(docs, LoginItemsDocument{SourcePath: d.SourcePath, Items: d.Records})
	}
	return docs, nil
}

// ScanSystem iterates /Users/*, decodes each user's backgrounditems.btm when
// present, and appends the bundled-app registrations found under the
// standard launchd bookkeeping directory. An empty result is not an
// error. The /Users/* glob does not report filesystem errors, so an absent or
// unreadable /Users yields no per-user documents rather than a PathError.
// Per-user documents are decoded concurrently, bounded by WorkerConcurrency.
func (s *Scanner) ScanSystem(ctx context.Context) ([]LoginItemsDocument, error) {
	userDirs, err := filepath.Glob("/Users/*")
	if err != nil {
		return nil, &PathError{Path: "/Users/*", Err: err}
	}

	var candidatePaths []string
	for _, userDir := range userDirs {
		p := filepath.Join(userDir, backgroundItemsRelativePath)
		if _, err := os.Stat(p); err == nil {
			candidatePaths = append(candidatePaths, p)
		}
	}

	docs, err := s.decodeFilesConcurrently(ctx, candidatePaths)
	if err != nil {
		return nil, err
	}

	bundled, err := s.ScanBundled(s.opts.BundledDirectory)
	if err != nil {
		// ScanSystem tolerates an absent or unreadable launchd directory
		// (e.g. outside a real macOS install); it never fails the whole
		// system scan over this alone; an empty result is not an error.
		s.opts.Logger.V(1).Info("bundled-app scan failed during system scan", "dir", s.opts.BundledDirectory, "error", err.Error())
		return docs, nil
	}
	return append(docs, bundled...), nil
}

// decodeFilesConcurrently runs DecodeFile over paths on a bounded worker
// pool; each document decode is independent, so no coordination beyond the
// semaphore is needed. Results preserve input order; the first error
// encountered is returned once all workers have finished the documents
// already in flight.
func (s *Scanner) decodeFilesConcurrently(ctx context.Context, paths []string) ([]LoginItemsDocument, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	concurrency := s.opts.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = defaultWorkerConcurrency
	}

	results := make([]LoginItemsDocument, len(paths))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, path := range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("scanning system: %w", ctx.Err())
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			doc, err := s.DecodeFile(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[i] = *doc
		}(i, path)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Command loginitemsscan decodes macOS Login Items persistence artifacts
// into output.csv and output.json, plus a human-readable table on stdout.
// All decoding lives in the library; this wrapper only parses arguments,
// formats results, and reports errors.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	loginitems "github.com/bgrewell/loginitems-kit"
	"github.com/bgrewell/loginitems-kit/pkg/logging"
	"github.com/bgrewell/usage"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("loginitemsscan"),
		usage.WithApplicationDescription("loginitemsscan decodes macOS Login Items persistence artifacts - backgrounditems.btm, BackgroundItems-v*.btm, com.apple.LSSharedFileList.GlobalLoginItems.sfl2, and launchd bundled-app registrations - into output.csv and output.json."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Enable debug logging", "", nil)
	trace := u.AddBooleanOption("t", "trace", false, "Enable trace logging (implies -v)", "", nil)
	system := u.AddBooleanOption("s", "system", false, "Force a full system scan even if <path> is given", "", nil)
	bundledOnly := u.AddBooleanOption("b", "bundled-only", false, "Scan only the launchd bundled-app registry directory", "", nil)
	path := u.AddArgument(1, "path", "Path to a single Login Items plist to decode; if omitted, runs a full system scan", "")
	bundledDir := u.AddArgument(2, "bundled-dir", "Override the launchd bookkeeping directory used for bundled-app registrations", "")

	if !u.Parse() {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	level := logging.LEVEL_INFO
	switch {
	case *trace:
		level = logging.LEVEL_TRACE
	case *verbose:
		level = logging.LEVEL_DEBUG
	}
	useColor := term.IsTerminal(int(os.Stderr.Fd()))
	logger := logging.NewSimpleLogger(os.Stderr, level, useColor)

	targetPath := ""
	if path != nil {
		targetPath = *path
	}
	overrideDir := ""
	if bundledDir != nil {
		overrideDir = *bundledDir
	}

	opts := []loginitems.Option{loginitems.WithLogger(logger)}
	if overrideDir != "" {
		opts = append(opts, loginitems.WithBundledDirectory(overrideDir))
	}
	scanner := loginitems.NewScanner(opts...)

	docs, err := run(scanner, *bundledOnly, *system, targetPath, overrideDir)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	if err := writeCSV("output.csv", docs); err != nil {
		u.PrintError(fmt.Errorf("writing output.csv: %w", err))
		os.Exit(1)
	}
	if err := writeJSON("output.json", docs); err != nil {
		u.PrintError(fmt.Errorf("writing output.json: %w", err))
		os.Exit(1)
	}

	printTable(docs)
	os.Exit(0)
}

// run dispatches to the Scanner entry point the flags select: a single-file
// decode, a bundled-only scan, or the default full system scan.
func run(scanner *loginitems.Scanner, bundledOnly, forceSystem bool, path, bundledDir string) ([]loginitems.LoginItemsDocument, error) {
	switch {
	case bundledOnly:
		dir := bundledDir
		if dir == "" {
			dir = "/var/db/com.apple.xpc.launchd/"
		}
		return scanner.ScanBundled(dir)
	case path != "" && !forceSystem:
		return scanner.Scan(path)
	default:
		spinner, _ := yacspin.New(yacspin.Config{
			Frequency:       100 * time.Millisecond,
			CharSet:         yacspin.CharSets[9],
			Suffix:          " scanning system login items...",
			SuffixAutoColon: true,
			StopCharacter:   "✓",
			StopColors:      []string{"fgGreen"},
		})
		if spinner != nil {
			_ = spinner.Start()
		}
		docs, err := scanner.ScanSystem(context.Background())
		if spinner != nil {
			if err != nil {
				_ = spinner.StopFail()
			} else {
				_ = spinner.Stop()
			}
		}
		return docs, err
	}
}

var csvHeader = []string{
	"source_path", "is_bundled", "app_id", "app_binary",
	"path", "cnid_path", "volume_name", "volume_path", "volume_uuid",
	"username", "uid", "has_executable_flag", "file_ref_flag",
}

func writeCSV(name string, docs []loginitems.LoginItemsDocument) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, doc := range docs {
		for _, item := range doc.Items {
			row := []string{
				doc.SourcePath,
				strconv.FormatBool(item.IsBundled),
				item.AppID,
				item.AppBinary,
				strings.Join(item.PathComponents, "/"),
				joinInt64(item.CNIDPath),
				item.VolumeName,
				item.VolumePath,
				item.VolumeUUID,
				item.Username,
				strconv.Itoa(int(item.UID)),
				strconv.FormatBool(item.HasExecutableFlag),
				strconv.FormatBool(item.FileRefFlag),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(name string, docs []loginitems.LoginItemsDocument) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

func printTable(docs []loginitems.LoginItemsDocument) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Source", "Bundled", "Target / App", "Volume"})
	for _, doc := range docs {
		for _, item := range doc.Items {
			target := strings.Join(item.PathComponents, "/")
			if item.IsBundled {
				target = item.AppBinary + " -> " + item.AppID
			}
			t.AppendRow(table.Row{doc.SourcePath, item.IsBundled, target, item.VolumeName})
		}
	}
	t.Render()
}

func joinInt64(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

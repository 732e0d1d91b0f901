// File: pkg/stitch/collect.go
package stitch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Extension is the only file extension the collector considers.
const Extension = ".txt"

// Collect scans sourceDir for transcript files and returns their records
// sorted ascending by order, together with the files it had to skip.
//
// The scan is non-recursive. Entries that are not regular files (directories,
// symlinks to non-files) are excluded silently; files whose name yields no
// order key or whose content cannot be read are excluded with a Skip entry.
func Collect(sourceDir string, logger *zap.Logger) ([]Record, []Skip, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, sourceDir)
		}
		return nil, nil, fmt.Errorf("failed to stat source directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, sourceDir)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source directory %s: %w", sourceDir, err)
	}

	var (
		records []Record
		skipped []Skip
	)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		if !isRegularFile(entry, filepath.Join(sourceDir, name)) {
			logger.Debug("Skipping non-regular entry", zap.String("entry", name))
			continue
		}

		order, err := ParseOrder(name)
		if err != nil {
			logger.Warn("Skipping file with unparsable name",
				zap.String("file", name),
				zap.Error(err))
			skipped = append(skipped, Skip{Filename: name, Reason: ReasonBadName, Err: err})
			continue
		}

		content, err := readText(filepath.Join(sourceDir, name))
		if err != nil {
			logger.Warn("Skipping unreadable file",
				zap.String("file", name),
				zap.Error(err))
			skipped = append(skipped, Skip{Filename: name, Reason: ReasonUnreadable, Err: err})
			continue
		}

		records = append(records, Record{Filename: name, Content: content, Order: order})
		logger.Debug("Collected transcript",
			zap.String("file", name),
			zap.Int("order", order),
			zap.Int("contentSizeBytes", len(content)))
	}

	// Stable sort: ties keep the directory enumeration order.
	sort.SliceStable(records, func(i, j int) bool { return records[i].Order < records[j].Order })

	logger.Info("Collected transcripts",
		zap.String("directory", sourceDir),
		zap.Int("collected", len(records)),
		zap.Int("skipped", len(skipped)))
	return records, skipped, nil
}

// isRegularFile reports whether entry is a regular file, following a symlink
// to its target. Symlinks to directories or other non-files do not count.
func isRegularFile(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	if err != nil {
		return false // dangling symlink
	}
	return target.Mode().IsRegular()
}

// readText reads the file as UTF-8 text. Content that is not valid UTF-8
// counts as a read failure.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %s is not valid UTF-8", filepath.Base(path))
	}
	return string(raw), nil
}

// File: pkg/stitch/write.go
package stitch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// WriteDocument serializes records into one document at path, one block per
// record in the given order. The parent directory chain is created when
// missing; an existing file at path is truncated. Any failure wraps ErrWrite.
func WriteDocument(path string, records []Record, logger *zap.Logger) (err error) {
	logger.Debug("Writing stitched document",
		zap.String("file", path),
		zap.Int("records", len(records)))

	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer closeOutput(outFile, path, logger, &err)

	writer := bufio.NewWriter(outFile)
	for _, record := range records {
		if err := writeBlock(writer, record); err != nil {
			logger.Error("Failed to write block",
				zap.String("file", path),
				zap.String("source", record.Filename),
				zap.Error(err))
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	logger.Info("Stitched document written",
		zap.String("file", path),
		zap.Int("totalRecords", len(records)))
	return nil
}

// Document renders the same block sequence WriteDocument writes, as a string.
// The two stay byte-identical.
func Document(records []Record) string {
	var b strings.Builder
	for _, record := range records {
		_ = writeBlock(&b, record) // strings.Builder writes cannot fail
	}
	return b.String()
}

// writeBlock writes one output block: a heading line with the source
// filename, a blank line, the content verbatim, and a trailing blank line.
func writeBlock(w io.Writer, record Record) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", record.Filename); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", record.Content); err != nil {
		return err
	}
	return nil
}

// closeOutput closes f and folds a failure into *err wrapped in ErrWrite,
// unless an earlier failure is already set. Close can surface write-back
// errors the kernel deferred past Flush.
func closeOutput(f io.Closer, path string, logger *zap.Logger, err *error) {
	cerr := f.Close()
	if cerr == nil {
		return
	}
	logger.Error("Failed to close output file", zap.String("file", path), zap.Error(cerr))
	if *err == nil {
		*err = fmt.Errorf("%w: %v", ErrWrite, cerr)
	}
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

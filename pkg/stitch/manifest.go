// File: pkg/stitch/manifest.go
package stitch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WriteManifest writes a plain-text inventory of the stitched records to
// path: one "<order>\t<filename>" line per record, in document order. It
// shares WriteDocument's directory-creation and overwrite semantics, and any
// failure wraps ErrWrite.
func WriteManifest(path string, records []Record, logger *zap.Logger) (err error) {
	logger.Debug("Writing manifest",
		zap.String("file", path),
		zap.Int("records", len(records)))

	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create manifest file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer closeOutput(outFile, path, logger, &err)

	writer := bufio.NewWriter(outFile)
	for _, record := range records {
		if _, err := fmt.Fprintf(writer, "%d\t%s\n", record.Order, record.Filename); err != nil {
			logger.Error("Failed to write manifest line",
				zap.String("file", path),
				zap.String("source", record.Filename),
				zap.Error(err))
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush manifest file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	logger.Info("Manifest written",
		zap.String("file", path),
		zap.Int("totalRecords", len(records)))
	return nil
}

package stitch

import (
	"time"

	"go.uber.org/zap"

	"voxstitch/pkg/clipboard"
)

// Run executes one stitch: collect transcripts from args.SourceDir, write the
// ordered document to args.Output, then produce the optional manifest and
// clipboard copy. Per-file failures are reported in the Result; directory and
// write failures abort with an error.
func Run(args Arguments, logger *zap.Logger) (Result, error) {
	startTime := time.Now()
	logger.Info("Starting stitch",
		zap.String("directory", args.SourceDir),
		zap.String("output", args.Output))

	records, skipped, err := Collect(args.SourceDir, logger)
	if err != nil {
		logger.Error("Failed to collect transcripts", zap.Error(err))
		return Result{}, err
	}

	if err := WriteDocument(args.Output, records, logger); err != nil {
		logger.Error("Failed to write stitched document", zap.Error(err))
		return Result{}, err
	}

	if args.Manifest != "" {
		if err := WriteManifest(args.Manifest, records, logger); err != nil {
			logger.Error("Failed to write manifest", zap.Error(err))
			return Result{}, err
		}
	}

	if args.Clipboard {
		copyToClipboard(records, logger)
	}

	logger.Info("Stitch completed",
		zap.Int("totalRecords", len(records)),
		zap.Int("skippedFiles", len(skipped)),
		zap.Duration("elapsed", time.Since(startTime)))
	return Result{Written: len(records), Output: args.Output, Skipped: skipped}, nil
}

// copyToClipboard copies the rendered document to the system clipboard. The
// document on disk is already complete at this point, so failures only warn.
func copyToClipboard(records []Record, logger *zap.Logger) {
	doc := Document(records)
	if doc == "" {
		logger.Warn("Clipboard copy skipped: document is empty")
		return
	}
	if err := clipboard.Copy(doc); err != nil {
		logger.Warn("Failed to copy document to clipboard", zap.Error(err))
		return
	}
	logger.Info("Document copied to clipboard", zap.Int("sizeBytes", len(doc)))
}

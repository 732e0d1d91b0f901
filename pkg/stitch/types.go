package stitch

// Arguments holds the options for one stitch run.
type Arguments struct {
	SourceDir string // Directory containing the transcript .txt files.
	Output    string // Destination path for the stitched document.
	Manifest  string // Optional destination path for the manifest; empty disables it.
	Clipboard bool   // If true, copy the stitched document to the system clipboard.
}

// Record represents one discovered transcript file.
type Record struct {
	Filename string // Original base name of the source file.
	Content  string // Full text content of the file; may be empty.
	Order    int    // Integer extracted from the filename, the sole sort key.
}

// SkipReason classifies why a file was excluded from the stitched document.
type SkipReason string

const (
	// ReasonBadName marks filenames no order key could be parsed from.
	ReasonBadName SkipReason = "bad-name"
	// ReasonUnreadable marks files whose content could not be read as UTF-8 text.
	ReasonUnreadable SkipReason = "unreadable"
)

// Skip records one excluded file together with the reason it was excluded.
type Skip struct {
	Filename string     // Base name of the skipped file.
	Reason   SkipReason // Why the file was excluded.
	Err      error      // The underlying parse or read error.
}

// Result summarizes a completed run.
type Result struct {
	Written int    // Number of records written to the document.
	Output  string // Path of the stitched document.
	Skipped []Skip // Files excluded by per-file failures.
}

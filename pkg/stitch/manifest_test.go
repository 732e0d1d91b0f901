package stitch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestWriteManifestLines(t *testing.T) {
	records := []Record{
		{Filename: "note_1@x.txt", Content: "A", Order: 1},
		{Filename: "note_2@x.txt", Content: "B", Order: 2},
		{Filename: "note_10@x.txt", Content: "J", Order: 10},
	}
	path := filepath.Join(t.TempDir(), "listing", "manifest.txt")
	if err := WriteManifest(path, records, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "1\tnote_1@x.txt\n2\tnote_2@x.txt\n10\tnote_10@x.txt\n"
	if string(data) != want {
		t.Fatalf("unexpected manifest:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestWriteManifestEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.txt")
	if err := WriteManifest(path, nil, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty manifest, got %q", string(data))
	}
}

func TestWriteManifestTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.txt")
	junk := "stale listing from a previous run that is much longer than the replacement"
	if err := os.WriteFile(path, []byte(junk), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := WriteManifest(path, sampleRecords[:1], zaptest.NewLogger(t)); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if want := "1\tnote_1@x.txt\n"; string(data) != want {
		t.Fatalf("existing content not truncated: %q", string(data))
	}
}

func TestWriteManifestFailureWrapsErrWrite(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("file, not a directory"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := WriteManifest(filepath.Join(blocker, "manifest.txt"), sampleRecords[:1], zaptest.NewLogger(t))
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}

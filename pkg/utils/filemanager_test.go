package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *FileManager {
	t.Helper()
	root := t.TempDir()
	fm := NewFileManager(filepath.Join(root, "in"), filepath.Join(root, "out"), filepath.Join(root, "archive"))
	fm.now = func() time.Time { return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC) }
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestManager(t)
	for _, name := range []string{"b.edi", "a.x12", "notes.md", "c.EDI"} {
		require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, name), []byte("ISA"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(fm.InputDir, "dir.edi"), 0o755))

	files, err := fm.DiscoverInputFiles([]string{"*.edi", "*.x12", "b.*"})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"a.x12", "b.edi"}, names)
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestManager(t)
	src := filepath.Join(fm.InputDir, "orders.edi")
	require.NoError(t, os.WriteFile(src, []byte("first"), 0o644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "orders.edi"), archived)
	assert.NoFileExists(t, src)

	// A second file with the same name does not overwrite the first.
	require.NoError(t, os.WriteFile(src, []byte("second"), 0o644))
	archived, err = fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "orders_20240115_103000.edi"), archived)

	first, err := os.ReadFile(filepath.Join(fm.InputArchiveDir, "orders.edi"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(first))
}

func TestArchiveInputFile_TimestampSubdirs(t *testing.T) {
	fm := newTestManager(t)
	fm.UseTimestampSubdirs = true
	src := filepath.Join(fm.InputDir, "orders.edi")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "2024", "01", "15", "orders.edi"), archived)
}

func TestArchiveInputFile_Disabled(t *testing.T) {
	fm := newTestManager(t)
	fm.ArchiveOnSuccess = false
	src := filepath.Join(fm.InputDir, "orders.edi")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, src, archived)
	assert.FileExists(t, src)
}

func TestWriteOutputFile(t *testing.T) {
	fm := newTestManager(t)

	path, err := fm.WriteOutputFile("po.html", []byte("<html>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.OutputDir, "po.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>", string(data))
	assert.NoFileExists(t, path+".tmp")
}

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC)
	params := map[string]string{"original": "orders", "type": "850", "control": "000000001", "index": "3"}

	tests := []struct {
		format string
		ext    string
		want   string
	}{
		{"{original}_{type}_{control}", ".pdf", "orders_850_000000001.pdf"},
		{"{original}_{timestamp}", ".xlsx", "orders_20240115_103005.xlsx"},
		{"{date}-{time}-{index}", ".html", "20240115-103005-3.html"},
		{"{original} / {type}", ".pdf", "orders_850.pdf"},
		{"report.pdf", ".pdf", "report.pdf"},
		{"{original}", "", "orders"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, generateOutputFileName(now, tt.format, params, tt.ext))
		})
	}

	name := GenerateOutputFileName("{uuid}", nil, ".pdf")
	assert.Len(t, name, 36+len(".pdf"))
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteErrorLog(nil, dir)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = WriteErrorLog([]ErrorLogEntry{{
		Timestamp:       time.Now(),
		FileName:        "bad.edi",
		ErrorType:       "parse",
		ErrorMessage:    "no ISA segment",
		TransactionType: "850",
	}}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total Errors: 1")
	assert.Contains(t, string(data), "bad.edi")
	assert.Contains(t, string(data), "Transaction:    850")
	assert.NotContains(t, string(data), "Control Number")
}

func TestFormatSummary(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	summary := ProcessingSummary{
		StartTime:       start,
		EndTime:         start.Add(2 * time.Second),
		TotalFiles:      2,
		SuccessfulFiles: 1,
		FailedFiles:     1,
		TotalDocuments:  3,
		ProcessedFiles: []ProcessedFileInfo{{
			InputFile:   "good.edi",
			OutputFiles: []string{"good.pdf", "good.html"},
			Types:       []string{"850", "810"},
			Documents:   3,
		}},
		FailedFilesList: []FailedFileInfo{{InputFile: "bad.edi", ErrorMessage: "boom"}},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatSummary(&buf, summary))

	out := buf.String()
	assert.Contains(t, out, "Duration:       2s")
	assert.Contains(t, out, "Output:       good.html")
	assert.Contains(t, out, "Types:        850, 810")
	assert.Contains(t, out, "Error: boom")

	path, err := WriteSummaryLog(summary, t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

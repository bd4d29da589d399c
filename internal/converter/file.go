package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/edi-document-renderer/pkg/utils"
)

// =============================================================================
// FILE PROCESSING
// =============================================================================

// FileOptions control how ProcessFile names and stores its outputs.
type FileOptions struct {
	Request

	// NameFormat is the output file name format without extension.
	// See utils.GenerateOutputFileName for placeholders.
	NameFormat string

	// Index is the position of the file in the run, starting at 1.
	Index int

	// DryRun converts without writing outputs or archiving the input.
	DryRun bool
}

// FileResult represents the outcome of processing a single file.
type FileResult struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFiles are the written artifacts, one per format.
	OutputFiles []string

	// ArchivePath is where the input was moved, if it was archived.
	ArchivePath string

	Success bool
	Error   error

	// Result is the conversion result. It is nil if conversion failed.
	Result *Result

	ProcessingTime time.Duration
}

// ProcessFile converts one input file and writes its artifacts through fm.
// The input is archived only when every artifact was written.
func (c *Converter) ProcessFile(ctx context.Context, fm *utils.FileManager, path string, opts FileOptions) (res FileResult) {
	start := time.Now()
	res.FilePath = path
	defer func() { res.ProcessingTime = time.Since(start) }()

	log := c.logger.With("file", filepath.Base(path))
	log.Info("Processing file")

	f, err := os.Open(path)
	if err != nil {
		res.Error = fmt.Errorf("failed to open input: %w", err)
		return res
	}
	result, err := c.Convert(ctx, f, opts.Request)
	f.Close()
	if err != nil {
		res.Error = err
		return res
	}
	res.Result = result

	if opts.DryRun {
		log.Info("Dry run, outputs not written", "formats", len(result.Artifacts))
		res.Success = true
		return res
	}

	params := outputParams(path, result, opts.Index)
	for _, a := range result.Artifacts {
		name := utils.GenerateOutputFileName(opts.NameFormat, params, a.Extension)
		out, err := fm.WriteOutputFile(name, a.Data)
		if err != nil {
			res.Error = fmt.Errorf("failed to write %s output: %w", a.Format, err)
			return res
		}
		res.OutputFiles = append(res.OutputFiles, out)
		log.Debug("Wrote output", "format", a.Format, "path", out, "bytes", len(a.Data))
	}

	archived, err := fm.ArchiveInputFile(path)
	if err != nil {
		// The outputs exist; a failed archive leaves the input for a rerun.
		log.Warn("Failed to archive input", "error", err)
	} else if archived != path {
		res.ArchivePath = archived
	}

	res.Success = true
	return res
}

// outputParams fills the file-specific output name placeholders.
func outputParams(path string, result *Result, index int) map[string]string {
	base := filepath.Base(path)
	return map[string]string{
		"original": strings.TrimSuffix(base, filepath.Ext(base)),
		"type":     strings.Join(result.Types(), "-"),
		"control":  result.ControlNumber,
		"index":    strconv.Itoa(index),
	}
}

// Summary folds file results into a processing summary.
func Summary(start time.Time, results []FileResult) utils.ProcessingSummary {
	summary := utils.ProcessingSummary{
		StartTime:  start,
		EndTime:    time.Now(),
		TotalFiles: len(results),
	}

	for _, r := range results {
		if !r.Success {
			summary.FailedFiles++
			msg := ""
			if r.Error != nil {
				msg = r.Error.Error()
			}
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    r.FilePath,
				ErrorMessage: msg,
				ErrorType:    errorType(r.Error),
			})
			continue
		}

		summary.SuccessfulFiles++
		info := utils.ProcessedFileInfo{
			InputFile:   r.FilePath,
			OutputFiles: r.OutputFiles,
			ArchivePath: r.ArchivePath,
			ProcessTime: r.ProcessingTime,
		}
		if r.Result != nil {
			info.Types = r.Result.Types()
			info.Documents = r.Result.Stats.Documents
			info.Warnings = r.Result.Stats.Warnings
		}
		summary.TotalDocuments += info.Documents
		summary.TotalWarnings += info.Warnings
		summary.ProcessedFiles = append(summary.ProcessedFiles, info)
	}

	return summary
}

// ErrorEntries lists the failed results as error log entries.
func ErrorEntries(results []FileResult) []utils.ErrorLogEntry {
	var entries []utils.ErrorLogEntry
	for _, r := range results {
		if r.Success || r.Error == nil {
			continue
		}
		entries = append(entries, utils.ErrorLogEntry{
			Timestamp:    time.Now(),
			FileName:     filepath.Base(r.FilePath),
			ErrorType:    errorType(r.Error),
			ErrorMessage: r.Error.Error(),
		})
	}
	return entries
}

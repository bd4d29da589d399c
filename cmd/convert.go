// =============================================================================
// EDI Document Renderer - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command for rendering
// X12 files. It orchestrates the whole batch.
//
// COMMAND USAGE:
//   edirender convert [flags]
//
// FLAGS:
//   --file      : Convert only these files instead of scanning the input dir
//   --format    : Output formats (pdf, xlsx, html); repeatable
//   --user      : User whose own layouts take priority
//   --layout    : Use this layout file for every document
//   --dry-run   : Convert without writing outputs or archiving inputs
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover X12 files in the input directory
//   3. For each file (concurrently, at most max_concurrency at once):
//      a. Parse and decode the interchange
//      b. Resolve the layout of every transaction type
//      c. Render and write one output per format
//      d. Archive the input
//   4. Write the summary and error logs
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/edi-document-renderer/internal/config"
	"github.com/ginjaninja78/edi-document-renderer/internal/converter"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
	"github.com/ginjaninja78/edi-document-renderer/internal/render"
	"github.com/ginjaninja78/edi-document-renderer/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

type convertFlags struct {
	files      []string
	formats    []string
	userID     string
	layoutFile string
	dryRun     bool
}

var convertOpts convertFlags

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Render X12 files as PDF, XLSX and HTML",
	Long: `The convert command scans the input directory for X12 files and renders
every transaction set they contain. Each input produces one output file per
format; documents of the same input share that file.

Processing is concurrent. Errors in one file do not affect the others unless
continue_on_error is false.

On success:
  - Rendered documents are written to the output directory
  - The input is moved to the input archive
  - A summary report is written

On error:
  - An error log is written to the output directory
  - The input remains in the input directory`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runConvert(cmd, cfg, convertOpts)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringSliceVar(&convertOpts.files, "file", nil, "Convert only these files")
	convertCmd.Flags().StringSliceVarP(&convertOpts.formats, "format", "f", nil, "Output formats: pdf, xlsx, html (default from config)")
	convertCmd.Flags().StringVar(&convertOpts.userID, "user", "", "User whose layouts take priority")
	convertCmd.Flags().StringVar(&convertOpts.layoutFile, "layout", "", "Layout file used for every document")
	convertCmd.Flags().BoolVar(&convertOpts.dryRun, "dry-run", false, "Convert without writing outputs or archiving inputs")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runConvert(cmd *cobra.Command, cfg *config.MainConfig, opts convertFlags) error {
	startTime := time.Now()
	out := cmd.OutOrStdout()

	// =========================================================================
	// STEP 1: PREPARE
	// =========================================================================

	names := opts.formats
	if len(names) == 0 {
		names = cfg.OutputFormats
	}
	formats, err := render.ParseFormats(names)
	if err != nil {
		return err
	}

	req := converter.Request{UserID: opts.userID, Formats: formats}
	if opts.layoutFile != "" {
		req.Layout, err = loadLayout(opts.layoutFile)
		if err != nil {
			return err
		}
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	fm.ArchiveOnSuccess = cfg.ArchiveInputs

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	inputFiles := opts.files
	if len(inputFiles) == 0 {
		inputFiles, err = fm.DiscoverInputFiles(cfg.InputPatterns)
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}
	if len(inputFiles) == 0 {
		fmt.Fprintln(out, "No X12 files found in the input directory.")
		return nil
	}
	logger.Info("Starting conversion",
		"files", len(inputFiles),
		"formats", names,
		"dry_run", opts.dryRun)

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// A semaphore bounds the number of files in flight. With
	// continue_on_error off, the first failure cancels the files that have
	// not started yet.

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	conv := converter.New(
		layout.NewDirResolver(cfg.LayoutsDir),
		render.New(render.Options{PDFUncompressed: cfg.PDFUncompressed}),
		logger,
	)

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.MaxConcurrency)
	results := make(chan converter.FileResult, len(inputFiles))

	for i, file := range inputFiles {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			res := conv.ProcessFile(ctx, fm, path, converter.FileOptions{
				Request:    req,
				NameFormat: cfg.OutputNameFormat,
				Index:      index,
				DryRun:     opts.dryRun,
			})
			if !res.Success && !cfg.ContinueOnError {
				cancel()
			}
			results <- res
		}(i+1, file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	var all []converter.FileResult
	for res := range results {
		all = append(all, res)
		name := filepath.Base(res.FilePath)
		if res.Success {
			targets := res.OutputFiles
			if opts.dryRun && res.Result != nil {
				targets = []string{fmt.Sprintf("%d document(s), dry run", res.Result.Stats.Documents)}
			}
			for _, t := range targets {
				fmt.Fprintf(out, "  ✓ %s -> %s\n", name, filepath.Base(t))
			}
		} else {
			fmt.Fprintf(out, "  ✗ %s: %v\n", name, res.Error)
		}
	}

	// =========================================================================
	// STEP 5: SUMMARY
	// =========================================================================

	summary := converter.Summary(startTime, all)
	fmt.Fprintln(out, "\n=== Processing Complete ===")
	fmt.Fprintf(out, "Total files:     %d\n", summary.TotalFiles)
	fmt.Fprintf(out, "Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Fprintf(out, "Errors:          %d\n", summary.FailedFiles)
	fmt.Fprintf(out, "Documents:       %d\n", summary.TotalDocuments)
	fmt.Fprintf(out, "Time elapsed:    %s\n", summary.EndTime.Sub(startTime))

	if !opts.dryRun {
		if path, err := utils.WriteSummaryLog(summary, cfg.OutputDir); err != nil {
			logger.Warn("Failed to write summary log", "error", err)
		} else {
			logger.Debug("Summary written", "path", path)
		}

		if path, err := utils.WriteErrorLog(converter.ErrorEntries(all), cfg.OutputDir); err != nil {
			logger.Warn("Failed to write error log", "error", err)
		} else if path != "" {
			fmt.Fprintf(out, "\nErrors have been logged to %s\n", path)
		}
	}

	if summary.FailedFiles > 0 {
		return fmt.Errorf("%d of %d file(s) failed", summary.FailedFiles, summary.TotalFiles)
	}
	return nil
}

// loadLayout reads and validates a layout file given on the command line.
func loadLayout(path string) (*layout.Config, error) {
	cfg, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	if err := layout.Check(cfg).Err(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return cfg, nil
}

// =============================================================================
// EDI Document Renderer - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the whole
// pipeline for one input, from raw bytes to rendered artifacts.
//
// CONVERSION PIPELINE:
//   1. Read the input permissively and normalize it to UTF-8
//   2. Sniff delimiters, segment, and extract the envelope
//   3. Split and decode every transaction set
//   4. Resolve the active layout per transaction type
//   5. Project every document through its layout
//   6. Render one artifact per requested format
//
// Layout resolution is the only stage that talks to a collaborator. When
// the resolver reports that no layout is available, the document is shown
// with the legacy layout instead.
//
// CONCURRENCY:
//   A Converter holds no per-request state and may be shared by goroutines.
//   The context is checked between stages; a caller deadline aborts the
//   request before the next stage starts.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/edi-document-renderer/internal/decoder"
	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
	"github.com/ginjaninja78/edi-document-renderer/internal/logging"
	"github.com/ginjaninja78/edi-document-renderer/internal/render"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// =============================================================================
// REQUEST AND RESULT
// =============================================================================

// Request describes one conversion.
type Request struct {
	// UserID scopes layout resolution to a user's own layouts. Empty means
	// system-wide layouts only.
	UserID string

	// Formats lists the artifacts to produce. Empty means all formats.
	Formats []render.Format

	// Layout, when set, is used for every document instead of asking the
	// resolver.
	Layout *layout.Config
}

// Result is the outcome of a successful conversion.
type Result struct {
	// ID identifies the conversion in logs.
	ID string

	// ControlNumber is the interchange control number of the input.
	ControlNumber string

	Documents []*document.Document
	Views     []render.View
	Artifacts []*render.Artifact

	// Warnings collects document and layout warnings, prefixed with the
	// transaction type and control number they belong to.
	Warnings []string

	Stats Stats
}

// Stats contains statistics about one conversion.
type Stats struct {
	Documents int
	LineItems int
	Warnings  int

	// LegacyLayouts counts documents rendered without a configured layout.
	LegacyLayouts int

	ProcessingTime time.Duration
}

// Types returns the distinct transaction types of the result in input order.
func (r *Result) Types() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range r.Documents {
		if !seen[d.TransactionType] {
			seen[d.TransactionType] = true
			out = append(out, d.TransactionType)
		}
	}
	return out
}

// Artifact returns the artifact of the given format, or nil.
func (r *Result) Artifact(f render.Format) *render.Artifact {
	for _, a := range r.Artifacts {
		if a.Format == f {
			return a
		}
	}
	return nil
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs the conversion pipeline.
type Converter struct {
	resolver layout.Resolver
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates a Converter. A nil resolver means no configured layouts, so
// every document uses the legacy layout. A nil logger discards output.
func New(resolver layout.Resolver, renderer *render.Renderer, logger *slog.Logger) *Converter {
	if renderer == nil {
		renderer = render.New(render.Options{})
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Converter{
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Convert reads an X12 input from r and renders it.
//
// Errors are returned for unreadable input, input without transaction sets,
// unsupported transaction types, resolver failures, writer failures and
// context cancellation. Structural oddities inside a document surface as
// warnings on the result instead.
func (c *Converter) Convert(ctx context.Context, r io.Reader, req Request) (*Result, error) {
	start := time.Now()
	result := &Result{ID: uuid.NewString()}
	log := c.logger.With("conversion_id", result.ID)

	formats := req.Formats
	if len(formats) == 0 {
		formats = render.Formats
	}

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	raw, err := x12.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 2: PARSE AND DECODE
	// =========================================================================

	ic := x12.Parse(raw)
	result.ControlNumber = ic.Envelope.ControlNumber
	log.Debug("Parsed interchange",
		"segments", len(ic.Segments),
		"control_number", ic.Envelope.ControlNumber)

	docs, err := decoder.DecodeAll(ic)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	result.Documents = docs
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 3: RESOLVE LAYOUTS AND PROJECT
	// =========================================================================
	// Layouts are resolved once per transaction type.

	layouts := make(map[string]*layout.Config)
	for _, doc := range docs {
		cfg, seen := layouts[doc.TransactionType]
		if !seen {
			cfg, err = c.resolve(ctx, doc.TransactionType, req)
			if err != nil {
				return nil, err
			}
			layouts[doc.TransactionType] = cfg
		}
		if cfg == nil {
			result.Stats.LegacyLayouts++
		}

		view := render.Project(doc, cfg)
		result.Views = append(result.Views, view)

		for _, w := range view.Warnings {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s %s: %s", doc.TransactionType, doc.ControlNumber, w))
		}
		result.Stats.LineItems += len(doc.LineItems)
	}
	result.Stats.Documents = len(docs)
	result.Stats.Warnings = len(result.Warnings)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 4: RENDER
	// =========================================================================

	artifacts, err := c.renderer.RenderAll(formats, result.Views)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.ProcessingTime = time.Since(start)

	for _, w := range result.Warnings {
		log.Warn("Document warning", "warning", w)
	}
	log.Info("Conversion complete",
		"documents", result.Stats.Documents,
		"types", result.Types(),
		"formats", len(artifacts),
		"legacy_layouts", result.Stats.LegacyLayouts,
		"duration", result.Stats.ProcessingTime)

	return result, nil
}

// resolve returns the layout for txType, or nil for the legacy layout.
func (c *Converter) resolve(ctx context.Context, txType string, req Request) (*layout.Config, error) {
	if req.Layout != nil {
		return req.Layout, nil
	}
	if c.resolver == nil {
		return nil, nil
	}

	cfg, ok, err := c.resolver.Resolve(ctx, txType, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve layout for %s: %w", txType, err)
	}
	if !ok {
		c.logger.Debug("No active layout, using legacy presentation",
			"transaction_type", txType,
			"user_id", req.UserID)
		return nil, nil
	}
	return cfg, nil
}

// =============================================================================
// EDI Document Renderer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the edirender CLI. It delegates command
// execution to the cmd package.
//
// USAGE:
//   edirender convert       - Render every X12 file in the input directory
//   edirender types         - List the supported transaction types
//   edirender describe      - Describe the elements a transaction type reads
//   edirender layout        - Validate, show, convert and scaffold layouts
//   edirender version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Parsing, decoding, layouts and rendering
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/edi-document-renderer/cmd"
)

func main() {
	cmd.Execute()
}

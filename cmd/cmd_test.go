package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/edi-document-renderer/internal/config"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

const sampleInput = "ISA*00*          *00*          *ZZ*ACMESENDER     *ZZ*ACMERECEIVER   *230405*0930*U*00401*000000042*0*P*>~" +
	"GS*PO*ACMESENDER*ACMERECEIVER*20230405*0930*42*X*004010~" +
	"ST*850*0001~BEG*00*SA*PO-1**20230401~N1*BY*Buyer Co~PO1*1*2*EA*3.00**VP*A~SE*5*0001~" +
	"GE*1*42~IEA*1*000000042~"

const sampleLayout = `
title_format: "Order {po_number}"
sections:
  - id: header
    title: Order
    fields:
      - key: po_number
        label: PO Number
`

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)

	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "850")
	assert.Contains(t, out, "997")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 18)
}

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, "describe", "850", "n102")
	require.NoError(t, err)
	assert.Contains(t, out, "N102")
	assert.Contains(t, out, "<role>_name")

	_, err = execute(t, "describe", "999")
	assert.ErrorContains(t, err, "unsupported transaction type: 999")
}

func TestLayoutValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(sampleLayout), 0o644))

	out, err := execute(t, "layout", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sections:\n  - title: No id\n"), 0o644))

	out, err = execute(t, "layout", "validate", bad)
	assert.ErrorIs(t, err, layout.ErrInvalidLayout)
	assert.Contains(t, out, "Validation completed")
}

func TestLayoutConvertAndScaffold(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "order.yaml")
	require.NoError(t, os.WriteFile(src, []byte(sampleLayout), 0o644))

	xlsx := filepath.Join(dir, "order.xlsx")
	_, err := execute(t, "layout", "convert", src, xlsx)
	require.NoError(t, err)

	cfg, err := layout.Load(xlsx)
	require.NoError(t, err)
	assert.Equal(t, "Order {po_number}", cfg.TitleFormat)
	require.Len(t, cfg.Sections, 1)
	assert.Equal(t, "PO Number", cfg.Sections[0].Fields[0].Label)

	sample := filepath.Join(dir, "po.edi")
	require.NoError(t, os.WriteFile(sample, []byte(sampleInput), 0o644))
	scaffold := filepath.Join(dir, "scaffold.json")

	out, err := execute(t, "layout", "scaffold", sample, scaffold)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 850 layout")

	generated, err := layout.Load(scaffold)
	require.NoError(t, err)
	assert.Empty(t, layout.Check(generated).Errors)
}

func TestRunConvert(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.InputDir = filepath.Join(root, "in")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.InputArchiveDir = filepath.Join(root, "archive")
	cfg.LayoutsDir = filepath.Join(root, "layouts")
	cfg.OutputNameFormat = "{original}_{type}"
	cfg.MaxConcurrency = 2
	require.NoError(t, cfg.EnsureDirectories())

	for _, name := range []string{"a.edi", "b.x12"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, name), []byte(sampleInput), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "broken.edi"), []byte("garbage"), 0o644))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	err := runConvert(cmd, cfg, convertFlags{formats: []string{"html"}})
	assert.ErrorContains(t, err, "1 of 3 file(s) failed")

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "a_850.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "b_850.html"))
	assert.FileExists(t, filepath.Join(cfg.InputArchiveDir, "a.edi"))
	assert.FileExists(t, filepath.Join(cfg.InputDir, "broken.edi"))
	assert.Contains(t, out.String(), "✗ broken.edi")
	assert.Contains(t, out.String(), "Successful:      2")

	logs, err := filepath.Glob(filepath.Join(cfg.OutputDir, "error_log_*.txt"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRunConvert_DryRun(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.InputDir = filepath.Join(root, "in")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.InputArchiveDir = filepath.Join(root, "archive")
	cfg.LayoutsDir = filepath.Join(root, "layouts")
	require.NoError(t, cfg.EnsureDirectories())

	input := filepath.Join(cfg.InputDir, "a.edi")
	require.NoError(t, os.WriteFile(input, []byte(sampleInput), 0o644))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runConvert(cmd, cfg, convertFlags{dryRun: true}))
	assert.FileExists(t, input)
	assert.Contains(t, out.String(), "1 document(s), dry run")

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

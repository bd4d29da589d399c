package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/edi-document-renderer/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "./layouts", cfg.LayoutsDir)
	assert.Equal(t, []string{"pdf", "xlsx", "html"}, cfg.OutputFormats)
	assert.Equal(t, "{original}_{type}_{timestamp}", cfg.OutputNameFormat)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.True(t, cfg.ContinueOnError)
	assert.True(t, cfg.ArchiveInputs)
	assert.False(t, cfg.PDFUncompressed)
}

func TestLoadMainConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edirender.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: /data/in
output_formats: [html]
continue_on_error: false
max_concurrency: 0
log_format: json
`), 0o644))

	cfg, err := config.LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, []string{"html"}, cfg.OutputFormats)
	assert.False(t, cfg.ContinueOnError)
	assert.True(t, cfg.ArchiveInputs)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMainConfig_EnvOverrides(t *testing.T) {
	t.Setenv("EDIRENDER_OUTPUT_DIR", "/env/out")
	t.Setenv("EDIRENDER_OUTPUT_FORMATS", "pdf,xlsx")
	t.Setenv("EDIRENDER_PDF_UNCOMPRESSED", "true")
	t.Setenv("EDIRENDER_MAX_CONCURRENCY", "2")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: /file/out\n"), 0o644))

	cfg, err := config.LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.Equal(t, []string{"pdf", "xlsx"}, cfg.OutputFormats)
	assert.True(t, cfg.PDFUncompressed)
	assert.Equal(t, 2, cfg.MaxConcurrency)
}

func TestLoadMainConfig_MissingFile(t *testing.T) {
	_, err := config.LoadMainConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	t.Chdir(t.TempDir())
	cfg, err := config.LoadMainConfig(config.DefaultConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "./output", cfg.OutputDir)
}

func TestLoadMainConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"format":     "output_formats: [docx]\n",
		"log format": "log_format: xml\n",
		"log level":  "log_level: loud\n",
		"yaml":       "input_dir: [unclosed\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := config.LoadMainConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.InputDir = filepath.Join(root, "in")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.LayoutsDir = filepath.Join(root, "layouts")
	cfg.InputArchiveDir = filepath.Join(root, "archive")

	require.NoError(t, cfg.EnsureDirectories())
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir, cfg.LayoutsDir, cfg.InputArchiveDir} {
		assert.DirExists(t, dir)
	}
}

package layout_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

func titled(title string) *layout.Config {
	return &layout.Config{
		TitleFormat: title,
		Sections:    []layout.Section{{ID: "h", Fields: []layout.Field{{Key: "po_number", Label: "PO Number"}}}},
	}
}

func TestSelect(t *testing.T) {
	versions := []layout.Version{
		{TransactionType: "850", Version: 1, Status: layout.StatusProduction, Layout: titled("system v1")},
		{TransactionType: "850", Version: 3, Status: layout.StatusLocked, Layout: titled("system v3")},
		{TransactionType: "850", Version: 4, Status: layout.StatusDraft, Layout: titled("system draft")},
		{TransactionType: "850", Version: 2, Status: "production", Owner: "alice", Layout: titled("alice v2")},
		{TransactionType: "850", Version: 5, Status: layout.StatusArchived, Owner: "alice", Layout: titled("alice archived")},
		{TransactionType: "850", Version: 9, Status: layout.StatusDraft, Owner: "bob", Layout: titled("bob draft")},
		{TransactionType: "810", Version: 7, Status: layout.StatusProduction, Layout: titled("invoice")},
	}

	tests := []struct {
		name   string
		txType string
		user   string
		want   string
	}{
		{"user version wins", "850", "alice", "alice v2"},
		{"inactive user version falls back to system", "850", "bob", "system v3"},
		{"anonymous gets system", "850", "", "system v3"},
		{"other type", "810", "alice", "invoice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := layout.Select(versions, tt.txType, tt.user)
			require.True(t, ok)
			assert.Equal(t, tt.want, v.Layout.TitleFormat)
		})
	}

	_, ok := layout.Select(versions, "997", "alice")
	assert.False(t, ok)
}

func TestStatus_Active(t *testing.T) {
	assert.True(t, layout.StatusProduction.Active())
	assert.True(t, layout.StatusLocked.Active())
	assert.True(t, layout.Status("locked").Active())
	assert.False(t, layout.StatusDraft.Active())
	assert.False(t, layout.StatusArchived.Active())
	assert.False(t, layout.Status("").Active())
}

func TestVersionList_Resolve(t *testing.T) {
	list := layout.VersionList{{TransactionType: "850", Version: 1, Status: layout.StatusProduction, Layout: titled("po")}}

	cfg, ok, err := list.Resolve(context.Background(), "850", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "po", cfg.TitleFormat)

	_, ok, err = list.Resolve(context.Background(), "810", "")
	require.NoError(t, err)
	assert.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = list.Resolve(ctx, "850", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDirResolver(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "po-system-v1.yaml", `
transaction_type: "850"
version: 1
status: PRODUCTION
layout:
  title_format: "System PO"
  sections:
    - id: header
      fields:
        - key: po_number
          label: PO Number
`)
	write(t, dir, "po-alice-v2.json", `{
  "transaction_type": "850",
  "version": 2,
  "status": "LOCKED",
  "owner": "alice",
  "layout_file": "alice-po.yml"
}`)
	write(t, dir, "alice-po.yml", yamlLayout)
	write(t, dir, "invoice-v1.toml", `
transaction_type = "810"
version = 1
status = "DRAFT"
layout_file = "missing.yaml"
`)
	write(t, dir, "README.txt", "not a manifest")

	r := layout.NewDirResolver(dir)
	ctx := context.Background()

	versions, err := r.Versions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, "810", versions[0].TransactionType)

	cfg, ok, err := r.Resolve(ctx, "850", "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Purchase Order {ref_number}", cfg.TitleFormat)

	cfg, ok, err = r.Resolve(ctx, "850", "carol")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "System PO", cfg.TitleFormat)

	_, ok, err = r.Resolve(ctx, "810", "")
	require.NoError(t, err)
	assert.False(t, ok, "draft versions are never used")
}

func TestDirResolver_InvalidLayout(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "po.yaml", `
transaction_type: "850"
version: 1
status: PRODUCTION
layout:
  sections:
    - id: lines
      type: table
`)

	_, _, err := layout.NewDirResolver(dir).Resolve(context.Background(), "850", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrInvalidLayout))
}

func TestDirResolver_MissingDirectory(t *testing.T) {
	r := layout.NewDirResolver(filepath.Join(t.TempDir(), "nope"))

	_, ok, err := r.Resolve(context.Background(), "850", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

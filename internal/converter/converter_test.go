package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ginjaninja78/edi-document-renderer/internal/decoder"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
	"github.com/ginjaninja78/edi-document-renderer/internal/render"
	"github.com/ginjaninja78/edi-document-renderer/pkg/utils"
)

const isaHeader = "ISA*00*          *00*          *ZZ*ACMESENDER     *ZZ*ACMERECEIVER   *230405*0930*U*00401*000000042*0*P*>~"

// mixedInput holds two purchase orders and an invoice in one group.
const mixedInput = isaHeader + "GS*PO*ACMESENDER*ACMERECEIVER*20230405*0930*42*X*004010~" +
	"ST*850*0001~BEG*00*SA*PO-1**20230401~N1*BY*Buyer Co~PO1*1*2*EA*3.00**VP*A~SE*5*0001~" +
	"ST*810*0002~BIG*20230401*INV-1~IT1*1*1*EA*2.00**VP*A~SE*4*0002~" +
	"ST*850*0003~BEG*00*SA*PO-2**20230402~SE*3*0003~" +
	"GE*3*42~IEA*1*000000042~"

func orderLayout() *layout.Config {
	return &layout.Config{
		TitleFormat: "Order {po_number}",
		Sections: []layout.Section{
			{ID: "header", Title: "Order", Fields: []layout.Field{
				{Key: "po_number", Label: "PO Number"},
				{Key: "po_date", Label: "Order Date", Type: layout.KindDate},
			}},
			{ID: "lines", Title: "Lines", Type: layout.SectionTable, DataSourceKey: "line_items", Columns: []layout.Column{
				{Key: "product_id", Label: "Item"},
				{Key: "unit_price", Label: "Price", Type: layout.KindCurrency},
			}},
		},
	}
}

func TestConvert_ResolvesOncePerType(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := layout.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "850", "alice").Return(orderLayout(), true, nil).Times(1)
	resolver.EXPECT().Resolve(gomock.Any(), "810", "alice").Return(nil, false, nil).Times(1)

	c := New(resolver, nil, nil)
	result, err := c.Convert(context.Background(), strings.NewReader(mixedInput), Request{
		UserID:  "alice",
		Formats: []render.Format{render.HTML},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "000000042", result.ControlNumber)
	assert.Equal(t, []string{"850", "810"}, result.Types())
	assert.Equal(t, 3, result.Stats.Documents)
	assert.Equal(t, 2, result.Stats.LineItems)
	assert.Equal(t, 1, result.Stats.LegacyLayouts)

	require.Len(t, result.Views, 3)
	assert.Equal(t, "Order PO-1", result.Views[0].Title)
	assert.Equal(t, "Order PO-2", result.Views[2].Title)
	assert.Equal(t, "2023-04-01", result.Views[0].Sections[0].Pairs[1].Value)
	assert.Equal(t, [][]string{{"A", "$3.00"}}, result.Views[0].Sections[1].Rows)

	// The invoice has no configured layout and falls back to the legacy one.
	assert.Contains(t, result.Views[1].Title, "INV-1")

	require.Len(t, result.Artifacts, 1)
	html := result.Artifact(render.HTML)
	require.NotNil(t, html)
	assert.Equal(t, "text/html; charset=utf-8", html.ContentType)
	assert.Contains(t, string(html.Data), "Order Date")
	assert.Nil(t, result.Artifact(render.PDF))
}

func TestConvert_AllFormatsByDefault(t *testing.T) {
	result, err := New(nil, nil, nil).Convert(context.Background(), strings.NewReader(mixedInput), Request{})
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 3)
	for i, f := range render.Formats {
		assert.Equal(t, f, result.Artifacts[i].Format)
		assert.NotEmpty(t, result.Artifacts[i].Data)
	}
	assert.Equal(t, 3, result.Stats.LegacyLayouts)
}

func TestConvert_RequestLayoutSkipsResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := layout.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := New(resolver, nil, nil).Convert(context.Background(), strings.NewReader(mixedInput), Request{
		Formats: []render.Format{render.HTML},
		Layout:  orderLayout(),
	})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.LegacyLayouts)
}

func TestConvert_ResolverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := layout.NewMockResolver(ctrl)
	boom := errors.New("store unavailable")
	resolver.EXPECT().Resolve(gomock.Any(), "850", "").Return(nil, false, boom)

	_, err := New(resolver, nil, nil).Convert(context.Background(), strings.NewReader(mixedInput), Request{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to resolve layout for 850")
}

func TestConvert_Errors(t *testing.T) {
	tests := map[string]struct {
		input string
		want  error
		kind  string
	}{
		"no transaction sets": {
			input: isaHeader + "GS*PO*A*B*20230101*1200*1*X*004010~GE*0*1~IEA*1*1~",
			want:  decoder.ErrNoTransactionSets,
			kind:  ErrorTypeInput,
		},
		"unsupported type": {
			input: isaHeader + "ST*999*0001~XYZ*1~SE*3*0001~",
			want:  decoder.ErrUnsupportedType,
			kind:  ErrorTypeUnsupported,
		},
		"empty input": {
			input: "",
			want:  decoder.ErrNoTransactionSets,
			kind:  ErrorTypeInput,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(nil, nil, nil).Convert(context.Background(), strings.NewReader(tt.input), Request{})
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, errorType(err))
		})
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := layout.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(resolver, nil, nil).Convert(ctx, strings.NewReader(mixedInput), Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ErrorTypeCanceled, errorType(err))
}

func TestConvert_UnterminatedSetWarning(t *testing.T) {
	raw := isaHeader + "GS*PO*A*B*20230101*1200*1*X*004010~" +
		"ST*850*0001~BEG*00*SA*LOST**20230101~" +
		"ST*850*0002~BEG*00*SA*KEPT**20230101~SE*3*0002~GE*2*1~IEA*1*1~"

	result, err := New(nil, nil, nil).Convert(context.Background(), strings.NewReader(raw), Request{
		Formats: []render.Format{render.HTML},
	})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.True(t, strings.HasPrefix(result.Warnings[0], "850 000000042: "), result.Warnings[0])
	assert.Equal(t, 1, result.Stats.Warnings)
}

func newFileManager(t *testing.T) *utils.FileManager {
	t.Helper()
	root := t.TempDir()
	fm := utils.NewFileManager(filepath.Join(root, "in"), filepath.Join(root, "out"), filepath.Join(root, "archive"))
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestProcessFile(t *testing.T) {
	fm := newFileManager(t)
	path := filepath.Join(fm.InputDir, "orders.edi")
	require.NoError(t, os.WriteFile(path, []byte(mixedInput), 0o644))

	res := New(nil, nil, nil).ProcessFile(context.Background(), fm, path, FileOptions{
		Request:    Request{Formats: []render.Format{render.HTML, render.XLSX}},
		NameFormat: "{original}_{type}_{control}_{index}",
		Index:      2,
	})
	require.NoError(t, res.Error)
	assert.True(t, res.Success)
	assert.True(t, res.ProcessingTime > 0)

	assert.Equal(t, []string{
		filepath.Join(fm.OutputDir, "orders_850-810_000000042_2.html"),
		filepath.Join(fm.OutputDir, "orders_850-810_000000042_2.xlsx"),
	}, res.OutputFiles)
	for _, out := range res.OutputFiles {
		assert.FileExists(t, out)
	}

	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "orders.edi"), res.ArchivePath)
	assert.NoFileExists(t, path)
}

func TestProcessFile_DryRun(t *testing.T) {
	fm := newFileManager(t)
	path := filepath.Join(fm.InputDir, "orders.edi")
	require.NoError(t, os.WriteFile(path, []byte(mixedInput), 0o644))

	res := New(nil, nil, nil).ProcessFile(context.Background(), fm, path, FileOptions{
		NameFormat: "{original}",
		DryRun:     true,
	})
	require.True(t, res.Success)
	assert.Empty(t, res.OutputFiles)
	assert.Len(t, res.Result.Artifacts, 3)
	assert.FileExists(t, path)

	entries, err := os.ReadDir(fm.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessFile_FailureKeepsInput(t *testing.T) {
	fm := newFileManager(t)
	path := filepath.Join(fm.InputDir, "bad.edi")
	require.NoError(t, os.WriteFile(path, []byte("not edi at all"), 0o644))

	res := New(nil, nil, nil).ProcessFile(context.Background(), fm, path, FileOptions{NameFormat: "{original}"})
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Error, decoder.ErrNoTransactionSets)
	assert.FileExists(t, path)

	missing := New(nil, nil, nil).ProcessFile(context.Background(), fm, filepath.Join(fm.InputDir, "gone.edi"), FileOptions{})
	assert.False(t, missing.Success)
	assert.Equal(t, ErrorTypeInput, errorType(missing.Error))
}

func TestSummaryAndErrorEntries(t *testing.T) {
	ok := FileResult{FilePath: "a.edi", Success: true, OutputFiles: []string{"a.pdf"}}
	ok.Result = &Result{Stats: Stats{Documents: 2, Warnings: 1}}
	failed := FileResult{FilePath: "dir/b.edi", Error: fmt.Errorf("failed to decode input: %w", decoder.ErrNoTransactionSets)}

	summary := Summary(time.Now(), []FileResult{ok, failed})
	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 1, summary.SuccessfulFiles)
	assert.Equal(t, 1, summary.FailedFiles)
	assert.Equal(t, 2, summary.TotalDocuments)
	assert.Equal(t, 1, summary.TotalWarnings)
	require.Len(t, summary.FailedFilesList, 1)
	assert.Equal(t, ErrorTypeInput, summary.FailedFilesList[0].ErrorType)

	entries := ErrorEntries([]FileResult{ok, failed})
	require.Len(t, entries, 1)
	assert.Equal(t, "b.edi", entries[0].FileName)
	assert.Contains(t, entries[0].ErrorMessage, "ST/SE")
}

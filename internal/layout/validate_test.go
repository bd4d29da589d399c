package layout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

func rules(errs []*layout.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Severity+":"+e.Field+":"+e.Rule)
	}
	return out
}

func TestValidate_ValidLayout(t *testing.T) {
	cfg, err := layout.Parse([]byte(yamlLayout), layout.FormatYAML)
	require.NoError(t, err)

	assert.Empty(t, layout.Validate(cfg))

	result := layout.Check(cfg)
	assert.True(t, result.IsValid)
	assert.NoError(t, result.Err())
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name string
		cfg  *layout.Config
		want []string
	}{
		{
			name: "nil layout",
			cfg:  nil,
			want: []string{"error:sections:required"},
		},
		{
			name: "no sections",
			cfg:  &layout.Config{},
			want: []string{"error:sections:required"},
		},
		{
			name: "missing and duplicate ids",
			cfg: &layout.Config{Sections: []layout.Section{
				{Type: "fields", Fields: []layout.Field{{Key: "a", Label: "A"}}},
				{ID: "x", Fields: []layout.Field{{Key: "a", Label: "A"}}},
				{ID: "x", Fields: []layout.Field{{Key: "b", Label: "B"}}},
			}},
			want: []string{"error:sections[0].id:required", "error:sections[2].id:unique"},
		},
		{
			name: "unknown section type",
			cfg: &layout.Config{Sections: []layout.Section{
				{ID: "s", Type: "carousel"},
			}},
			want: []string{"error:sections[s].type:kind"},
		},
		{
			name: "table without source or columns",
			cfg: &layout.Config{Sections: []layout.Section{
				{ID: "t", Type: "table"},
			}},
			want: []string{"error:sections[t].data_source_key:required", "error:sections[t].columns:required"},
		},
		{
			name: "bad entries",
			cfg: &layout.Config{Sections: []layout.Section{
				{ID: "t", Type: "table", DataSourceKey: "line_items", Columns: []layout.Column{
					{Key: "", Label: "Nothing"},
					{Key: "q", Type: "sparkle", Label: "Q", Width: -1},
				}},
			}},
			want: []string{
				"error:sections[t].columns[0].key:required",
				"error:sections[t].columns[1].type:kind",
				"error:sections[t].columns[1].width:range",
			},
		},
		{
			name: "warnings only",
			cfg: &layout.Config{
				ThemeColor:  "blue",
				TitleFormat: "PO {ref_number",
				Sections: []layout.Section{
					{ID: "f", Fields: []layout.Field{{Key: "po_number"}}},
					{ID: "g", Type: "grid"},
					{ID: "e"},
				},
			},
			want: []string{
				"warning:theme_color:color",
				"warning:title_format:placeholder",
				"warning:sections[f].fields[0].label:required",
				"warning:sections[g].type:grid",
				"warning:sections[e].fields:required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules(layout.Validate(tt.cfg)))
		})
	}
}

func TestCheck_GridIsOnlyAWarning(t *testing.T) {
	cfg := &layout.Config{Sections: []layout.Section{{ID: "g", Type: "grid"}}}

	result := layout.Check(cfg)
	assert.True(t, result.IsValid)
	assert.Equal(t, 1, result.WarningCount)
	assert.Zero(t, result.ErrorCount)
}

func TestCheck_Err(t *testing.T) {
	result := layout.Check(&layout.Config{Sections: []layout.Section{{ID: "t", Type: "table"}}})

	require.False(t, result.IsValid)
	assert.Equal(t, 2, result.ErrorCount)

	err := result.Err()
	assert.True(t, errors.Is(err, layout.ErrInvalidLayout))
	assert.Contains(t, err.Error(), "data_source_key")
}

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "No validation errors.", layout.FormatErrors(nil))

	report := layout.FormatErrors(layout.Validate(&layout.Config{ThemeColor: "x"}))
	assert.Contains(t, report, "1 problem(s)")
	assert.Contains(t, report, "1. [ERROR] sections: layout has no sections")
}

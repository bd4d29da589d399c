// =============================================================================
// EDI Document Renderer - Layout Validation
// =============================================================================
//
// Layouts are edited by hand, so they are checked before use. Problems are
// collected rather than returned one at a time, each with the path of the
// offending element, so that a single `layout validate` run shows everything
// that needs fixing.
//
// Severity:
//   - "error"   the layout cannot be rendered with
//   - "warning" the layout renders, but probably not the way the author meant
//
// =============================================================================

package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidLayout is returned when a layout has at least one error.
var ErrInvalidLayout = errors.New("invalid layout")

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single layout problem.
type ValidationError struct {
	// Severity is "error" or "warning".
	Severity string

	// Field is the path of the element, e.g. "sections[lines].columns[2].type".
	Field string

	// Value is the offending value, if any.
	Value string

	// Rule is a short identifier of the violated rule.
	Rule string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(e.Severity), e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s (value: '%s')", strings.ToUpper(e.Severity), e.Field, e.Message, e.Value)
}

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no errors. Warnings do not count.
	IsValid bool

	Errors       []*ValidationError
	ErrorCount   int
	WarningCount int
}

// Err returns nil when the layout is valid and otherwise an error wrapping
// ErrInvalidLayout that names the first problem.
func (r *ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	for _, e := range r.Errors {
		if e.Severity == SeverityError {
			return fmt.Errorf("%w: %d error(s), first: %s", ErrInvalidLayout, r.ErrorCount, e.Error())
		}
	}
	return ErrInvalidLayout
}

var hexColor = regexp.MustCompile(`^#?([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// =============================================================================
// VALIDATOR
// =============================================================================

// Validate checks cfg and returns every problem found, errors and warnings
// alike, in document order.
func Validate(cfg *Config) []*ValidationError {
	v := &validator{}
	v.config(cfg)
	return v.errs
}

// Check validates cfg and summarizes the outcome.
func Check(cfg *Config) *ValidationResult {
	errs := Validate(cfg)
	result := &ValidationResult{Errors: errs}
	for _, e := range errs {
		if e.Severity == SeverityError {
			result.ErrorCount++
		} else {
			result.WarningCount++
		}
	}
	result.IsValid = result.ErrorCount == 0
	return result
}

type validator struct {
	errs []*ValidationError
}

func (v *validator) add(severity, field, value, rule, message string) {
	v.errs = append(v.errs, &ValidationError{
		Severity: severity,
		Field:    field,
		Value:    value,
		Rule:     rule,
		Message:  message,
	})
}

func (v *validator) config(cfg *Config) {
	if cfg == nil || len(cfg.Sections) == 0 {
		v.add(SeverityError, "sections", "", "required", "layout has no sections")
		return
	}

	// =========================================================================
	// Document settings
	// =========================================================================
	if cfg.ThemeColor != "" && !hexColor.MatchString(cfg.ThemeColor) {
		v.add(SeverityWarning, "theme_color", cfg.ThemeColor, "color", "theme color is not a hex color and will be ignored")
	}
	if strings.Count(cfg.TitleFormat, "{") != strings.Count(cfg.TitleFormat, "}") {
		v.add(SeverityWarning, "title_format", cfg.TitleFormat, "placeholder", "title format has unbalanced braces")
	}

	// =========================================================================
	// Sections
	// =========================================================================
	seen := make(map[string]bool, len(cfg.Sections))
	for i, s := range cfg.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		if s.ID == "" {
			v.add(SeverityError, path+".id", "", "required", "section id is required")
		} else {
			if seen[s.ID] {
				v.add(SeverityError, path+".id", s.ID, "unique", "duplicate section id")
			}
			seen[s.ID] = true
			path = fmt.Sprintf("sections[%s]", s.ID)
		}
		v.section(path, s)
	}
}

func (v *validator) section(path string, s Section) {
	switch s.Kind() {
	case SectionFields:
		if len(s.Fields) == 0 {
			v.add(SeverityWarning, path+".fields", "", "required", "fields section has no fields")
		}
		if len(s.Columns) > 0 {
			v.add(SeverityWarning, path+".columns", "", "unused", "columns are ignored in a fields section")
		}
		for i, f := range s.Fields {
			v.entry(fmt.Sprintf("%s.fields[%d]", path, i), f.Key, f.Label, f.Type)
		}

	case SectionTable:
		if strings.TrimSpace(s.DataSourceKey) == "" {
			v.add(SeverityError, path+".data_source_key", "", "required", "table section needs a data source key")
		}
		if len(s.Columns) == 0 {
			v.add(SeverityError, path+".columns", "", "required", "table section has no columns")
		}
		for i, c := range s.Columns {
			colPath := fmt.Sprintf("%s.columns[%d]", path, i)
			v.entry(colPath, c.Key, c.Label, c.Type)
			if c.Width < 0 {
				v.add(SeverityError, colPath+".width", fmt.Sprint(c.Width), "range", "column width cannot be negative")
			}
		}

	case SectionGrid:
		v.add(SeverityWarning, path+".type", s.Type, "grid", "grid sections are rendered as a placeholder")

	default:
		v.add(SeverityError, path+".type", s.Type, "kind", "unknown section type (expected fields, table or grid)")
	}
}

func (v *validator) entry(path, key, label, kind string) {
	if strings.TrimSpace(key) == "" {
		v.add(SeverityError, path+".key", "", "required", "key is required")
	}
	if strings.TrimSpace(label) == "" {
		v.add(SeverityWarning, path+".label", "", "required", "label is empty, the key will be shown instead")
	}
	switch NormalizeKind(kind) {
	case KindText, KindDate, KindCurrency, KindNumber, KindStatus:
	default:
		v.add(SeverityError, path+".type", kind, "kind", "unknown value type (expected text, date, currency, number or status)")
	}
}

// FormatErrors formats problems into a human-readable report.
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Validation completed with %d problem(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&builder, "%d. %s\n", i+1, err.Error())
	}
	return builder.String()
}

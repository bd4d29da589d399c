package render

import (
	"fmt"
	"strings"
)

// Format is an output format.
type Format string

const (
	PDF  Format = "pdf"
	XLSX Format = "xlsx"
	HTML Format = "html"
)

// Formats lists every supported format in the order they are produced.
var Formats = []Format{PDF, XLSX, HTML}

// ParseFormat accepts a format name in any case, with or without a
// leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case PDF, XLSX, HTML:
		return f, nil
	case "htm":
		return HTML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", s)
	}
}

// ParseFormats parses a list of names, dropping duplicates. An empty list
// means every format.
func ParseFormats(names []string) ([]Format, error) {
	if len(names) == 0 {
		return append([]Format(nil), Formats...), nil
	}
	seen := make(map[Format]bool, len(names))
	out := make([]Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case HTML:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension of the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Artifact is one rendered output.
type Artifact struct {
	Format      Format
	ContentType string
	Extension   string
	Data        []byte
}

package render

import (
	"bytes"
	"fmt"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// Options tune the writers.
type Options struct {
	// PDFUncompressed writes PDF content streams without compression, which
	// keeps the text searchable with plain tools.
	PDFUncompressed bool
}

// Renderer writes Views in the supported formats.
type Renderer struct {
	opts Options
}

// New returns a Renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

type writer func(r *Renderer, buf *bytes.Buffer, views []View) error

var writers = map[Format]writer{
	PDF:  (*Renderer).writePDF,
	XLSX: (*Renderer).writeXLSX,
	HTML: (*Renderer).writeHTML,
}

// Render writes every view into a single artifact of the given format.
func (r *Renderer) Render(format Format, views []View) (*Artifact, error) {
	w, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}

	var buf bytes.Buffer
	if err := w(r, &buf, views); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	return &Artifact{
		Format:      format,
		ContentType: format.ContentType(),
		Extension:   format.Extension(),
		Data:        buf.Bytes(),
	}, nil
}

// RenderAll renders views once per format, in the order given.
func (r *Renderer) RenderAll(formats []Format, views []View) ([]*Artifact, error) {
	out := make([]*Artifact, 0, len(formats))
	for _, f := range formats {
		a, err := r.Render(f, views)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Document projects and renders a single document. A nil cfg selects the
// legacy layout.
func (r *Renderer) Document(format Format, doc *document.Document, cfg *layout.Config) (*Artifact, error) {
	return r.Render(format, []View{Project(doc, cfg)})
}

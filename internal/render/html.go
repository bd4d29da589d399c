package render

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

const stylesheet = `body{font-family:Helvetica,Arial,sans-serif;margin:2em;color:#222}
article{margin-bottom:3em}
dl{display:grid;grid-template-columns:max-content auto;gap:.25em 1.5em}
dt{font-weight:bold}
dd{margin:0}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #ccc;padding:.3em .6em;text-align:left}
.placeholder,.empty{color:#777;font-style:italic}
.warning{color:#9c2a00}
.bold{font-weight:bold}`

func (r *Renderer) writeHTML(buf *bytes.Buffer, views []View) error {
	title := "Documents"
	if len(views) == 1 {
		title = views[0].Title
	}

	head := elem(atom.Head, nil,
		elem(atom.Meta, attrs("charset", "utf-8")),
		elem(atom.Title, nil, text(title)),
		elem(atom.Style, nil, text(stylesheet)),
	)

	body := elem(atom.Body, nil)
	for _, v := range views {
		body.AppendChild(htmlView(v))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(elem(atom.Html, attrs("lang", "en"), head, body))

	return html.Render(buf, doc)
}

func htmlView(v View) *html.Node {
	article := elem(atom.Article, attrs("class", "document", "data-type", v.TransactionType))
	article.AppendChild(elem(atom.H1, attrs("style", "color:"+v.ThemeColor), text(v.Title)))

	for _, w := range v.Warnings {
		article.AppendChild(elem(atom.P, attrs("class", "warning"), text(w)))
	}

	for _, s := range v.Sections {
		section := elem(atom.Section, attrs("id", s.ID))
		if s.Title != "" {
			section.AppendChild(elem(atom.H2, attrs("style", "color:"+v.ThemeColor), text(s.Title)))
		}

		switch s.Kind {
		case layout.SectionGrid:
			section.AppendChild(elem(atom.P, attrs("class", "placeholder"), text(s.Placeholder)))

		case layout.SectionTable:
			section.AppendChild(htmlTable(s))

		default:
			dl := elem(atom.Dl, nil)
			for _, p := range s.Pairs {
				dd := elem(atom.Dd, nil, text(p.Value))
				if p.Style != "" {
					dd.Attr = attrs("class", p.Style)
				}
				dl.AppendChild(elem(atom.Dt, nil, text(p.Label)))
				dl.AppendChild(dd)
			}
			section.AppendChild(dl)
		}

		article.AppendChild(section)
	}
	return article
}

func htmlTable(s SectionView) *html.Node {
	tr := elem(atom.Tr, nil)
	for _, c := range s.Columns {
		th := elem(atom.Th, nil, text(c.Label))
		if c.Width > 0 {
			th.Attr = attrs("style", fmt.Sprintf("width:%gmm", c.Width))
		}
		tr.AppendChild(th)
	}

	tbody := elem(atom.Tbody, nil)
	if len(s.Rows) == 0 {
		tbody.AppendChild(elem(atom.Tr, nil,
			elem(atom.Td, attrs("class", "empty", "colspan", fmt.Sprint(len(s.Columns))), text("No entries")),
		))
	}
	for _, row := range s.Rows {
		rtr := elem(atom.Tr, nil)
		for _, cell := range row {
			rtr.AppendChild(elem(atom.Td, nil, text(cell)))
		}
		tbody.AppendChild(rtr)
	}

	return elem(atom.Table, nil, elem(atom.Thead, nil, tr), tbody)
}

func elem(a atom.Atom, attr []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attr}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

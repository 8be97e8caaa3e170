package core

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	DefaultTitle = "DevPortfolio"
	DefaultLang  = "en"
)

type Shell struct {
	Title          string
	Lang           string
	Description    string
	StylesheetHref string
}

func Document(shell Shell, body g.Node) g.Node {
	title := shell.Title
	if title == "" {
		title = DefaultTitle
	}

	lang := shell.Lang
	if lang == "" {
		lang = DefaultLang
	}

	return h.Doctype(
		h.HTML(
			h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("UTF-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(title)),
				g.If(shell.Description != "", h.Meta(h.Name("description"), h.Content(shell.Description))),
				g.If(shell.StylesheetHref != "", h.Link(h.Rel("stylesheet"), h.Href(shell.StylesheetHref))),
			),
			h.Body(body),
		),
	)
}

func RenderHTML(node g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func WriteDocument(w io.Writer, shell Shell, body g.Node) error {
	data, err := RenderHTML(Document(shell, body))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/devportfolio/internal/content"
)

// Header renders the site banner: brand mark, section navigation and the contact button.
func Header() g.Node {
	s := headerStyles

	return h.Header(h.Class(s.Class("header")),
		h.Div(h.Class(s.Class("container")),
			h.Div(h.Class(s.Class("logo")),
				h.Span(h.Class(s.Class("logoText")), g.Text(content.BrandName)),
				h.Span(h.Class(s.Class("logoDot")), g.Text(content.BrandAccent)),
			),
			h.Nav(h.Class(s.Class("nav")),
				h.Ul(h.Class(s.Class("navList")),
					g.Map(content.Navigation(), func(link content.NavLink) g.Node {
						return h.Li(h.A(h.Href(link.Target), h.Class(s.Class("navLink")), g.Text(link.Label)))
					}),
				),
			),
			h.Button(h.Type("button"), h.Class(s.Class("ctaButton")), g.Text("Let's Talk")),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/devportfolio/internal/content"
)

// Hero renders the #home section with the headline and two call-to-action buttons.
func Hero() g.Node {
	s := heroStyles

	return h.Section(h.ID("home"), h.Class(s.Class("hero")),
		h.Div(h.Class(s.Class("container")),
			h.H1(h.Class(s.Class("title")),
				g.Text(content.HeroHeadline),
				h.Span(h.Class(s.Class("accent")), g.Text(content.HeroAccent)),
			),
			h.P(h.Class(s.Class("subtitle")), g.Text(content.HeroSubtitle)),
			h.Div(h.Class(s.Class("ctaGroup")),
				h.Button(h.Type("button"), h.Class(s.Class("primaryBtn")), g.Text("View My Work")),
				h.Button(h.Type("button"), h.Class(s.Class("secondaryBtn")), g.Text("Get In Touch")),
			),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/devportfolio/internal/content"
)

// About renders the #about section: biography paragraphs and the skill chips.
func About() g.Node {
	s := aboutStyles

	bio := content.Biography()

	var labels []string
	for _, skill := range content.Skills() {
		labels = append(labels, skill.Label)
	}

	return h.Section(h.ID("about"), h.Class(s.Class("about")),
		h.Div(h.Class(s.Class("container")),
			h.H2(h.Class(s.Class("title")), g.Text("About Me")),
			h.Div(h.Class(s.Class("content")),
				h.Div(h.Class(s.Class("text")),
					h.P(h.Class(s.Class("description")), g.Text(bio[0])),
					h.P(h.Class(s.Class("description")), g.Text(bio[1])),
				),
				h.Div(h.Class(s.Class("skills")),
					h.H3(h.Class(s.Class("skillsTitle")), g.Text("Technologies I Work With")),
					h.Div(h.Class(s.Class("skillsGrid")), chips(s.Class("skill"), labels)),
				),
			),
		),
	)
}

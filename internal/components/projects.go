package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/devportfolio/internal/content"
)

// Projects renders the #projects section with one card per showcase project.
func Projects() g.Node {
	s := projectsStyles

	return h.Section(h.ID("projects"), h.Class(s.Class("projects")),
		h.Div(h.Class(s.Class("container")),
			h.H2(h.Class(s.Class("title")), g.Text("My Projects")),
			h.Div(h.Class(s.Class("grid")),
				g.Map(content.Projects(), projectCard),
			),
		),
	)
}

func projectCard(card content.ProjectCard) g.Node {
	s := projectsStyles

	return h.Article(h.Class(s.Class("card")),
		h.Div(h.Class(s.Class("cardContent")),
			h.H3(h.Class(s.Class("cardTitle")), g.Text(card.Title)),
			h.P(h.Class(s.Class("cardDescription")), g.Text(card.Description)),
			h.Div(h.Class(s.Class("techStack")), chips(s.Class("tech"), card.Technologies)),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/devportfolio/internal/content"
)

// Footer renders the #contact site footer: brand, navigation, social and legal links.
func Footer() g.Node {
	s := footerStyles

	return h.Footer(h.ID("contact"), h.Class(s.Class("footer")),
		h.Div(h.Class(s.Class("container")),
			h.Div(h.Class(s.Class("content")),
				h.Div(h.Class(s.Class("brand")),
					h.H3(h.Class(s.Class("logo")), g.Text(content.BrandName+content.BrandAccent)),
					h.P(h.Class(s.Class("tagline")), g.Text(content.Tagline)),
				),
				h.Div(h.Class(s.Class("links")),
					h.Div(h.Class(s.Class("linkGroup")),
						h.H4(h.Class(s.Class("linkTitle")), g.Text("Navigation")),
						g.Map(content.Navigation(), func(link content.NavLink) g.Node {
							return footerLink(link.Label, link.Target)
						}),
					),
					h.Div(h.Class(s.Class("linkGroup")),
						h.H4(h.Class(s.Class("linkTitle")), g.Text("Connect")),
						g.Map(content.SocialLinks(), func(link content.SocialLink) g.Node {
							return footerLink(link.Label, link.Target)
						}),
					),
				),
			),
			h.Div(h.Class(s.Class("bottom")),
				h.P(h.Class(s.Class("copyright")), g.Text(content.Copyright)),
				h.Div(h.Class(s.Class("legal")),
					g.Map(content.LegalLinks(), func(link content.LegalLink) g.Node {
						return h.A(h.Href(link.Target), h.Class(s.Class("legalLink")), g.Text(link.Label))
					}),
				),
			),
		),
	)
}

func footerLink(label, target string) g.Node {
	return h.A(h.Href(target), h.Class(footerStyles.Class("link")), g.Text(label))
}

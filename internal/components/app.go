// Package components renders the portfolio page. Every component is a pure
// function with no input; App composes them in a fixed order.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func App() g.Node {
	return h.Div(h.Class(appStyles.Class("app")),
		Header(),
		h.Main(h.Class(appStyles.Class("main")),
			Hero(),
			About(),
			Projects(),
		),
		Footer(),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// chips renders inert labels, one span per entry, in order.
func chips(class string, labels []string) g.Node {
	return g.Map(labels, func(label string) g.Node {
		return h.Span(h.Class(class), g.Text(label))
	})
}

package components

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"
	"golang.org/x/net/html"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()

	var b strings.Builder
	if err := node.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

// parseBody renders node and returns the parsed <body> element.
func parseBody(t *testing.T, node g.Node) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(render(t, node)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	body := find(doc, func(n *html.Node) bool { return isElement(n, "body") })
	if body == nil {
		t.Fatal("no body element in parsed document")
	}
	return body
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, _ := attr(n, "class")
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func texts(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = text(n)
	}
	return out
}

type link struct {
	label  string
	target string
}

func links(nodes []*html.Node) []link {
	out := make([]link, 0, len(nodes))
	for _, n := range nodes {
		href, _ := attr(n, "href")
		out = append(out, link{label: text(n), target: href})
	}
	return out
}

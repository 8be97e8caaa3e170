package content

import (
	"strings"
	"testing"
)

func TestNavigationTargets(t *testing.T) {
	want := []NavLink{
		{Label: "Home", Target: "#home"},
		{Label: "About", Target: "#about"},
		{Label: "Work", Target: "#projects"},
		{Label: "Contact", Target: "#contact"},
	}

	got := Navigation()
	if len(got) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("link %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Run("navigation", func(t *testing.T) {
		links := Navigation()
		links[0].Label = "Changed"
		if Navigation()[0].Label != "Home" {
			t.Error("mutating returned slice changed shared navigation")
		}
	})

	t.Run("project technologies", func(t *testing.T) {
		cards := Projects()
		cards[0].Technologies[0] = "Changed"
		if Projects()[0].Technologies[0] != "React" {
			t.Error("mutating returned technologies changed shared projects")
		}
	})

	t.Run("skills", func(t *testing.T) {
		tags := Skills()
		tags[5].Label = "Changed"
		if Skills()[5].Label != "CSS/Sass" {
			t.Error("mutating returned slice changed shared skills")
		}
	})
}

func TestProjectTechnologyCounts(t *testing.T) {
	cards := Projects()
	if len(cards) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(cards))
	}
	for _, card := range cards {
		if n := len(card.Technologies); n < 2 || n > 3 {
			t.Errorf("%s: expected 2-3 technologies, got %d", card.Title, n)
		}
	}
}

func TestPlaceholderTargets(t *testing.T) {
	for _, link := range SocialLinks() {
		if link.Target != "#" {
			t.Errorf("%s: expected placeholder target, got %q", link.Label, link.Target)
		}
	}
	for _, link := range LegalLinks() {
		if link.Target != "#" {
			t.Errorf("%s: expected placeholder target, got %q", link.Label, link.Target)
		}
	}
}

func TestBiographyReturnsCopy(t *testing.T) {
	bio := Biography()
	bio[0] = "changed"

	if Biography()[0] == "changed" {
		t.Error("mutating the returned biography changed the shared text")
	}
}

func TestBiographyIsSingleSpaced(t *testing.T) {
	for i, p := range Biography() {
		if strings.Contains(p, "  ") {
			t.Errorf("paragraph %d contains a double space", i)
		}
		if strings.TrimSpace(p) != p {
			t.Errorf("paragraph %d has surrounding whitespace", i)
		}
	}
}

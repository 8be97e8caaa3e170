// Package content holds the literal text of the portfolio page.
package content

const (
	BrandName   = "DevPortfolio"
	BrandAccent = "."
	Tagline     = "Building digital experiences that make a difference."
	Copyright   = "© 2025 DevPortfolio. All rights reserved."
)

type NavLink struct {
	Label  string
	Target string
}

type SkillTag struct {
	Label string
}

type ProjectCard struct {
	Title        string
	Description  string
	Technologies []string
}

type SocialLink struct {
	Label  string
	Target string
}

type LegalLink struct {
	Label  string
	Target string
}

var navigation = []NavLink{
	{Label: "Home", Target: "#home"},
	{Label: "About", Target: "#about"},
	{Label: "Work", Target: "#projects"},
	{Label: "Contact", Target: "#contact"},
}

var skills = []SkillTag{
	{Label: "React"},
	{Label: "JavaScript"},
	{Label: "TypeScript"},
	{Label: "Node.js"},
	{Label: "Python"},
	{Label: "CSS/Sass"},
}

var projects = []ProjectCard{
	{
		Title:        "E-Commerce Platform",
		Description:  "A full-stack e-commerce solution built with React, Node.js, and MongoDB.",
		Technologies: []string{"React", "Node.js", "MongoDB"},
	},
	{
		Title:        "Task Management App",
		Description:  "A collaborative task management tool with real-time updates and team features.",
		Technologies: []string{"Vue.js", "Firebase", "Tailwind"},
	},
	{
		Title:        "Weather Dashboard",
		Description:  "A beautiful weather app with location-based forecasts and interactive maps.",
		Technologies: []string{"JavaScript", "API", "CSS3"},
	},
}

var social = []SocialLink{
	{Label: "LinkedIn", Target: "#"},
	{Label: "GitHub", Target: "#"},
	{Label: "Twitter", Target: "#"},
	{Label: "Email", Target: "#"},
}

var legal = []LegalLink{
	{Label: "Privacy Policy", Target: "#"},
	{Label: "Terms of Service", Target: "#"},
}

// Navigation returns the in-page links shared by the header and footer.
func Navigation() []NavLink {
	return append([]NavLink(nil), navigation...)
}

func Skills() []SkillTag {
	return append([]SkillTag(nil), skills...)
}

// Projects returns the showcase cards. Technology lists are copied too.
func Projects() []ProjectCard {
	out := make([]ProjectCard, len(projects))
	for i, p := range projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out[i] = p
	}
	return out
}

func SocialLinks() []SocialLink {
	return append([]SocialLink(nil), social...)
}

func LegalLinks() []LegalLink {
	return append([]LegalLink(nil), legal...)
}

var biography = [2]string{
	"I'm a passionate developer with a love for creating meaningful digital experiences. " +
		"With expertise in modern web technologies, I focus on building applications that " +
		"not only look great but also solve real problems.",
	"When I'm not coding, you'll find me exploring new technologies, contributing to " +
		"open source projects, or sharing knowledge with the developer community.",
}

// Biography returns the about section text, one entry per paragraph.
func Biography() [2]string {
	return biography
}

const (
	HeroHeadline = "Building Digital Experiences"
	HeroAccent   = " That Matter"
	HeroSubtitle = "I'm a passionate developer who turns ideas into reality through clean code and creative solutions."
)

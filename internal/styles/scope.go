package styles

import (
	"strings"

	"github.com/3-lines-studio/devportfolio/internal/core"
)

type blockKind int

const (
	ruleList blockKind = iota
	declarations
)

// At-rules whose blocks hold declarations rather than nested rules.
// Native CSS nesting is not supported: a rule block is always treated as
// declarations, so selectors nested inside one stay unscoped.
var declarationAtRules = map[string]bool{
	"font-face":           true,
	"page":                true,
	"property":            true,
	"counter-style":       true,
	"font-palette-values": true,
}

type scoper struct {
	module  string
	hash    string
	out     strings.Builder
	pending strings.Builder
	header  strings.Builder
	started bool
	isAt    bool
	stack   []blockKind
	classes map[string]struct{}
}

func scope(src, module, hash string) (string, map[string]struct{}) {
	s := &scoper{
		module:  module,
		hash:    hash,
		classes: make(map[string]struct{}),
	}

	for i := 0; i < len(src); {
		if strings.HasPrefix(src[i:], "/*") {
			j := len(src)
			if end := strings.Index(src[i+2:], "*/"); end >= 0 {
				j = i + 2 + end + 2
			}
			s.flush()
			s.out.WriteString(src[i:j])
			i = j
			continue
		}

		c := src[i]
		if c == '"' || c == '\'' {
			j := closingQuote(src, i)
			if s.inDeclarations() {
				s.out.WriteString(src[i:j])
			} else {
				s.add(src[i:j])
			}
			i = j
			continue
		}

		if s.inDeclarations() {
			switch c {
			case '{':
				s.stack = append(s.stack, declarations)
			case '}':
				s.pop()
			}
			s.out.WriteByte(c)
			i++
			continue
		}

		switch c {
		case '{':
			kind := s.kind()
			s.end()
			s.out.WriteByte(c)
			s.stack = append(s.stack, kind)
		case '}':
			s.end()
			s.out.WriteByte(c)
			s.pop()
		case ';':
			s.add(";")
			s.end()
		default:
			s.add(src[i : i+1])
		}
		i++
	}
	s.end()

	return s.out.String(), s.classes
}

func (s *scoper) inDeclarations() bool {
	return len(s.stack) > 0 && s.stack[len(s.stack)-1] == declarations
}

func (s *scoper) pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *scoper) add(text string) {
	if !s.started {
		if trimmed := strings.TrimLeft(text, " \t\r\n"); trimmed != "" {
			s.started = true
			s.isAt = trimmed[0] == '@'
		}
	}
	s.pending.WriteString(text)
	s.header.WriteString(text)
}

func (s *scoper) flush() {
	text := s.pending.String()
	s.pending.Reset()
	if s.isAt {
		s.out.WriteString(text)
		return
	}
	s.out.WriteString(s.rewrite(text))
}

func (s *scoper) end() {
	s.flush()
	s.header.Reset()
	s.started = false
	s.isAt = false
}

func (s *scoper) kind() blockKind {
	if !s.isAt {
		return declarations
	}
	if declarationAtRules[atRuleName(s.header.String())] {
		return declarations
	}
	return ruleList
}

func (s *scoper) rewrite(selector string) string {
	var b strings.Builder
	for i := 0; i < len(selector); {
		c := selector[i]
		switch {
		case c == '"' || c == '\'':
			j := closingQuote(selector, i)
			b.WriteString(selector[i:j])
			i = j
		case c == '\\' && i+1 < len(selector):
			b.WriteString(selector[i : i+2])
			i += 2
		case c == '.' && isIdentStart(selector[i+1:]):
			j := i + 1
			for j < len(selector) {
				if selector[j] == '\\' && j+1 < len(selector) {
					j += 2
					continue
				}
				if !isIdentChar(selector[j]) {
					break
				}
				j++
			}
			local := selector[i+1 : j]
			s.classes[local] = struct{}{}
			b.WriteByte('.')
			b.WriteString(core.ScopedClassName(s.module, local, s.hash))
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func atRuleName(header string) string {
	header = strings.TrimSpace(header)
	header = strings.TrimPrefix(header, "@")
	end := 0
	for end < len(header) && isIdentChar(header[end]) {
		end++
	}
	name := strings.ToLower(header[:end])
	// Vendor prefixes: @-webkit-keyframes behaves like @keyframes.
	if strings.HasPrefix(name, "-") {
		if k := strings.Index(name[1:], "-"); k >= 0 {
			name = name[k+2:]
		}
	}
	return name
}

func closingQuote(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(s)
}

func isIdentStart(rest string) bool {
	if rest == "" {
		return false
	}
	c := rest[0]
	if isLetter(c) || c == '_' || c >= 0x80 {
		return true
	}
	if c == '-' && len(rest) > 1 {
		n := rest[1]
		return isLetter(n) || n == '_' || n == '-' || n >= 0x80
	}
	return false
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_' || c >= 0x80
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

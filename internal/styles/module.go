// Package styles scopes component stylesheets the way CSS modules do: every
// class selector in a module is renamed to <Module>_<class>__<hash>, so two
// components can both declare .title without colliding.
package styles

import (
	"bytes"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/3-lines-studio/devportfolio/internal/core"
)

type Module struct {
	name    string
	hash    string
	css     string
	classes map[string]struct{}
}

func New(name string, source []byte) *Module {
	hash := core.HashContent(source)
	css, classes := scope(string(source), name, hash)
	return &Module{
		name:    name,
		hash:    hash,
		css:     css,
		classes: classes,
	}
}

func Load(fsys fs.FS, path string) (*Module, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style module %s: %w", path, err)
	}
	return New(core.ModuleNameForPath(path), data), nil
}

func MustLoad(fsys fs.FS, path string) *Module {
	m, err := Load(fsys, path)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Module) Name() string {
	return m.name
}

// Class returns the scoped name for local. Undeclared classes still get a
// scoped name; they just match no rule.
func (m *Module) Class(local string) string {
	return core.ScopedClassName(m.name, local, m.hash)
}

func (m *Module) Defined(local string) bool {
	_, ok := m.classes[local]
	return ok
}

// Locals lists the declared class names, sorted.
func (m *Module) Locals() []string {
	locals := make([]string, 0, len(m.classes))
	for local := range m.classes {
		locals = append(locals, local)
	}
	sort.Strings(locals)
	return locals
}

func (m *Module) CSS() string {
	return m.css
}

func Bundle(mods ...*Module) []byte {
	var b bytes.Buffer
	for i, m := range mods {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "/* %s */\n", m.name)
		b.WriteString(strings.TrimSpace(m.css))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

package components

import (
	"embed"

	"github.com/3-lines-studio/devportfolio/internal/styles"
)

//go:embed css/*.module.css
var cssFS embed.FS

var (
	appStyles      = styles.MustLoad(cssFS, "css/app.module.css")
	headerStyles   = styles.MustLoad(cssFS, "css/header.module.css")
	heroStyles     = styles.MustLoad(cssFS, "css/hero.module.css")
	aboutStyles    = styles.MustLoad(cssFS, "css/about.module.css")
	projectsStyles = styles.MustLoad(cssFS, "css/projects.module.css")
	footerStyles   = styles.MustLoad(cssFS, "css/footer.module.css")
)

// Modules returns the style modules in document order.
func Modules() []*styles.Module {
	return []*styles.Module{
		appStyles,
		headerStyles,
		heroStyles,
		aboutStyles,
		projectsStyles,
		footerStyles,
	}
}

func Stylesheet() []byte {
	return styles.Bundle(Modules()...)
}

// Package devportfolio renders the DevPortfolio single-page site.
package devportfolio

import (
	"context"
	"io"

	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/devportfolio/internal/adapters/cli"
	"github.com/3-lines-studio/devportfolio/internal/adapters/fs"
	"github.com/3-lines-studio/devportfolio/internal/adapters/site"
	"github.com/3-lines-studio/devportfolio/internal/components"
	"github.com/3-lines-studio/devportfolio/internal/content"
	"github.com/3-lines-studio/devportfolio/internal/core"
	"github.com/3-lines-studio/devportfolio/internal/usecase"
)

var defaultOptions = site.Options{
	Title:       core.DefaultTitle,
	Lang:        core.DefaultLang,
	Description: content.Tagline,
}

// App returns the page body, for embedding in another gomponents tree.
func App() g.Node {
	return components.App()
}

// Render writes the full HTML document.
func Render(w io.Writer) error {
	page, err := site.NewRenderer(defaultOptions).Render(context.Background())
	if err != nil {
		return err
	}
	_, err = w.Write(page.HTML)
	return err
}

// Stylesheet writes the bundled component CSS that Render links to.
func Stylesheet(w io.Writer) error {
	_, err := w.Write(components.Stylesheet())
	return err
}

// Build writes index.html, the fingerprinted stylesheet and manifest.json to dir.
func Build(ctx context.Context, dir string) error {
	svc := usecase.NewBuildService(site.NewRenderer(defaultOptions), fs.NewOSFileSystem(), cli.NewQuietOutput())
	return svc.BuildSite(ctx, usecase.BuildInput{OutDir: dir}).Error
}

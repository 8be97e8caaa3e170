package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/3-lines-studio/devportfolio/internal/components"
	"github.com/3-lines-studio/devportfolio/internal/core"
)

type Options struct {
	Title          string
	Lang           string
	Description    string
	RelativeAssets bool
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) Render(ctx context.Context) (core.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return core.RenderedPage{}, err
	}

	start := time.Now()

	css := components.Stylesheet()
	cssName := core.AssetName(core.StylesheetName, css)

	shell := core.Shell{
		Title:          r.opts.Title,
		Lang:           r.opts.Lang,
		Description:    r.opts.Description,
		StylesheetHref: core.AssetHref(cssName, r.opts.RelativeAssets),
	}

	html, err := core.RenderHTML(core.Document(shell, components.App()))
	if err != nil {
		return core.RenderedPage{}, fmt.Errorf("failed to render page: %w", err)
	}

	slog.Debug("page render timing", "duration", time.Since(start), "html_bytes", len(html), "css_bytes", len(css))

	return core.RenderedPage{
		HTML:    html,
		CSS:     css,
		CSSName: cssName,
	}, nil
}

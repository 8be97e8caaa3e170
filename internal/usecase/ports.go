package usecase

import (
	"context"
	"io"

	"github.com/3-lines-studio/devportfolio/internal/adapters/fs"
	"github.com/3-lines-studio/devportfolio/internal/core"
)

type Renderer interface {
	Render(ctx context.Context) (core.RenderedPage, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)

	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Stdout() io.Writer
	Stderr() io.Writer
}

type FileSystem = fs.FileSystem

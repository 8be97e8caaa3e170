package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	"github.com/3-lines-studio/devportfolio/internal/adapters/cli"
	"github.com/3-lines-studio/devportfolio/internal/core"
)

type BuildInput struct {
	OutDir string
}

type BuildOutput struct {
	Success bool
	Files   []string
	Error   error
}

type BuildService struct {
	renderer Renderer
	fs       FileSystem
	cli      CLIOutput
}

func NewBuildService(renderer Renderer, fs FileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		renderer: renderer,
		fs:       fs,
		cli:      cli,
	}
}

type outputFile struct {
	path string
	data []byte
}

func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	s.cli.PrintHeader("DevPortfolio Build")

	if err := core.ValidateOutDir(input.OutDir); err != nil {
		return BuildOutput{Error: fmt.Errorf("invalid output directory: %w", err)}
	}

	report := cli.NewBuildReport(s.cli, input.OutDir)
	fail := func(step *cli.BuildStep, err error) BuildOutput {
		report.EndStep(step, false, err.Error())
		report.Render()
		return BuildOutput{Error: err}
	}

	stepDirs := report.StartStep("Creating output directory")
	if err := s.fs.MkdirAll(input.OutDir, 0755); err != nil {
		return fail(stepDirs, fmt.Errorf("failed to create output dir: %w", err))
	}
	report.EndStep(stepDirs, true, "")

	stepRender := report.StartStep("Rendering page")
	if err := ctx.Err(); err != nil {
		return fail(stepRender, fmt.Errorf("build canceled: %w", err))
	}
	renderStart := time.Now()
	page, err := s.renderer.Render(ctx)
	if err != nil {
		return fail(stepRender, fmt.Errorf("failed to render page: %w", err))
	}
	slog.Debug("build render timing", "duration", time.Since(renderStart))
	report.EndStep(stepRender, true, "")

	stepWrite := report.StartStep("Writing output")
	if err := ctx.Err(); err != nil {
		return fail(stepWrite, fmt.Errorf("build canceled: %w", err))
	}

	paths := core.CalculateOutputPaths(input.OutDir, page.CSSName)
	stale, err := s.previousStylesheet(paths.Manifest, page.CSSName)
	if err != nil {
		report.AddWarning("Previous manifest", "Could not read manifest.json, old stylesheet left in place", []string{err.Error()})
	}

	manifestData, err := core.NewManifest(page).Encode()
	if err != nil {
		return fail(stepWrite, fmt.Errorf("failed to encode manifest: %w", err))
	}

	files := []outputFile{
		{path: paths.HTML, data: page.HTML},
		{path: paths.CSS, data: page.CSS},
		{path: paths.Manifest, data: manifestData},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := s.fs.WriteFile(f.path, f.data, 0644); err != nil {
			return fail(stepWrite, fmt.Errorf("failed to write %s: %w", filepath.Base(f.path), err))
		}
		slog.Debug("wrote output file", "path", f.path, "bytes", len(f.data))
		written = append(written, f.path)
		report.AddFile(f.path)
	}
	report.EndStep(stepWrite, true, "")
	report.Render()

	if stale != "" {
		stalePath := filepath.Join(input.OutDir, stale)
		if err := s.fs.Remove(stalePath); err != nil {
			s.cli.PrintWarning("Failed to remove old stylesheet %s: %v", stale, err)
		} else {
			s.cli.PrintSuccess("Removed old stylesheet")
			s.cli.PrintFile(stalePath)
		}
	}

	return BuildOutput{
		Success: !report.HasFailures(),
		Files:   written,
	}
}

// previousStylesheet returns the stylesheet named by the manifest of an
// earlier build, if it differs from current and still exists. Only files
// this build would have written are returned.
func (s *BuildService) previousStylesheet(manifestPath, current string) (string, error) {
	if !s.fs.FileExists(manifestPath) {
		return "", nil
	}

	data, err := s.fs.ReadFile(manifestPath)
	if err != nil {
		return "", err
	}
	man, err := core.ParseManifest(data)
	if err != nil {
		return "", err
	}

	_, cssHref := core.GetAssets(man, "index")
	name := path.Base(cssHref)
	if cssHref == "" || name == current || !core.IsAssetName(core.StylesheetName, name) {
		return "", nil
	}
	if !s.fs.FileExists(filepath.Join(filepath.Dir(manifestPath), name)) {
		return "", nil
	}
	return name, nil
}

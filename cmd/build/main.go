package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/3-lines-studio/devportfolio/internal/adapters/cli"
	"github.com/3-lines-studio/devportfolio/internal/adapters/fs"
	"github.com/3-lines-studio/devportfolio/internal/adapters/site"
	"github.com/3-lines-studio/devportfolio/internal/config"
	"github.com/3-lines-studio/devportfolio/internal/usecase"
)

func main() {
	output := cli.NewOutput()

	if len(os.Args) > 2 {
		output.PrintHeader("DevPortfolio Build")
		output.PrintError("Too many arguments")
		output.PrintStep("Usage: devportfolio-build [out-dir]")
		output.PrintStep("Example: devportfolio-build ./dist")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		output.PrintHeader("DevPortfolio Build")
		output.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if cfg.ColorsDisabled() {
		output.DisableColors()
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	outDir := cfg.OutDir
	if len(os.Args) == 2 {
		outDir = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	buildService := usecase.NewBuildService(site.NewRenderer(cfg.SiteOptions()), fs.NewOSFileSystem(), output)

	result := buildService.BuildSite(ctx, usecase.BuildInput{OutDir: outDir})
	if result.Error != nil {
		output.PrintError("%v", result.Error)
		stop()
		os.Exit(1)
	}

	slog.Debug("build finished", "files", len(result.Files), "out_dir", outDir)
	output.PrintDone("Build completed successfully")
}

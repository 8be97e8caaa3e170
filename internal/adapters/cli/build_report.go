package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type reportOutput interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Stdout() io.Writer
	Stderr() io.Writer
}

type BuildWarning struct {
	Subject string
	Message string
	Details []string
}

type BuildReport struct {
	out         reportOutput
	steps       []BuildStep
	warnings    []BuildWarning
	files       []string
	startTime   time.Time
	outputDir   string
	hasFailures bool
}

func NewBuildReport(out reportOutput, outputDir string) *BuildReport {
	return &BuildReport{
		out:       out,
		steps:     make([]BuildStep, 0),
		warnings:  make([]BuildWarning, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	r.steps = append(r.steps, BuildStep{
		Name:      name,
		StartTime: time.Now(),
	})
	return &r.steps[len(r.steps)-1]
}

// EndStep closes the most recently started step. Steps run one at a time,
// so the pointer from StartStep stays valid until the next StartStep.
func (r *BuildReport) EndStep(step *BuildStep, success bool, err string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(subject string, message string, details []string) {
	r.warnings = append(r.warnings, BuildWarning{
		Subject: subject,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddFile(path string) {
	r.files = append(r.files, path)
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)
	stdout := r.out.Stdout()

	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		fmt.Fprintf(stdout, "  %s %s\n", status, step.Name)
		if step.Error != "" {
			fmt.Fprintf(stdout, "      • %s\n", step.Error)
		}
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "  "+r.out.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		for _, w := range r.warnings {
			fmt.Fprintf(stdout, "  %s %s\n", r.out.Yellow("⚠"), w.Subject)
			fmt.Fprintf(stdout, "    %s\n", w.Message)
			for _, detail := range deduplicateStrings(w.Details) {
				fmt.Fprintf(stdout, "      • %s\n", detail)
			}
		}
	}

	if len(r.files) > 0 {
		fmt.Fprintln(stdout)
		for _, f := range r.files {
			fmt.Fprintf(stdout, "    %s\n", r.out.Gray(f))
		}
	}

	fmt.Fprintln(stdout)
	if r.hasFailures {
		fmt.Fprintf(r.out.Stderr(), "  %s\n", r.out.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(stdout, "  "+r.out.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(stdout, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps first-seen order and annotates repeats.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if n := counts[item]; n > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, n))
		} else {
			result = append(result, item)
		}
	}
	return result
}

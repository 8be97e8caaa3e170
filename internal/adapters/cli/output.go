package cli

import (
	"fmt"
	"io"
	"os"
)

type Output struct {
	stdout       io.Writer
	stderr       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		enableColors: isTerminal() && os.Getenv("NO_COLOR") == "",
	}
}

// NewWriterOutput prints to the given writers without colors.
func NewWriterOutput(stdout, stderr io.Writer) *Output {
	return &Output{
		stdout: stdout,
		stderr: stderr,
	}
}

func NewQuietOutput() *Output {
	return NewWriterOutput(io.Discard, io.Discard)
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Stdout() io.Writer {
	return o.stdout
}

func (o *Output) Stderr() io.Writer {
	return o.stderr
}

func (o *Output) Green(text string) string {
	return o.color("32", text)
}

func (o *Output) Yellow(text string) string {
	return o.color("33", text)
}

func (o *Output) Red(text string) string {
	return o.color("31", text)
}

func (o *Output) Gray(text string) string {
	return o.color("90", text)
}

func (o *Output) color(code, text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.stdout, msg)
	fmt.Fprintln(o.stdout)
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Fprintf(o.stdout, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  "+o.Green("✓ ")+"%s\n", formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  "+o.Yellow("⚠ ")+"%s\n", formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stderr, "  "+o.Red("✗ ")+"%s\n", formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.stdout, "    %s\n", path)
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.stdout, msg)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}

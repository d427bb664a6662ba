package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // audit found missing symbols, probe failed
	ExitCommandError = 2 // bad flags, unreadable config or catalog
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode returns the exit code for err; ExitFailure unless err is an
// *ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Formatter writes command output as text or YAML.
type Formatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Color     bool
}

func newFormatter(opts *RootOptions, w, errw io.Writer) *Formatter {
	return &Formatter{
		Format:    opts.Format,
		Writer:    w,
		ErrWriter: errw,
		Color:     opts.Format == "text" && isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// YAML encodes v to the output writer.
func (f *Formatter) YAML(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (f *Formatter) Printf(format string, args ...any) {
	fmt.Fprintf(f.Writer, format, args...)
}

var (
	styleGood = ansi.NewStyle().ForegroundColor(ansi.Green)
	styleWarn = ansi.NewStyle().ForegroundColor(ansi.Yellow)
	styleBad  = ansi.NewStyle().Bold().ForegroundColor(ansi.Red)
	styleHead = ansi.NewStyle().Bold()
)

func (f *Formatter) style(s ansi.Style, text string) string {
	if !f.Color {
		return text
	}
	return s.Styled(text)
}

func (f *Formatter) Good(s string) string { return f.style(styleGood, s) }
func (f *Formatter) Warn(s string) string { return f.style(styleWarn, s) }
func (f *Formatter) Bad(s string) string  { return f.style(styleBad, s) }
func (f *Formatter) Head(s string) string { return f.style(styleHead, s) }

// Table writes rows as left-aligned columns. Cells may contain escape
// sequences; widths are measured on the visible text.
func (f *Formatter) Table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], ansi.StringWidth(cell))
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	write := func(row []string) {
		var b strings.Builder
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				pad := 2
				if i < len(widths) {
					pad += widths[i] - ansi.StringWidth(cell)
				}
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		fmt.Fprintln(f.Writer, strings.TrimRight(b.String(), " "))
	}
	head := make([]string, len(header))
	for i, h := range header {
		head[i] = f.Head(h)
	}
	write(head)
	for _, row := range rows {
		write(row)
	}
}

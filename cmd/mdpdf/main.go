package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/mdpdf"
	"pkt.systems/mdpdf/pdf"
)

// Process exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitUsage      = 2
	exitNotFound   = 3
	exitUnreadable = 4
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdpdf")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if v, _ := flags.GetBool("version"); v {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	}
	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, "expected at most one input file")
		flags.Usage()
		return exitUsage
	}

	s, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	input := defaultInput
	if flags.NArg() == 1 {
		input = flags.Arg(0)
	}
	input = normalizePath(input)
	output := outputPath(input, s.Output)

	// Diagnostics go to stderr so they never mix with PDF or outline output.
	logger, err := newLogger(stderr, s.LogLevel, s.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	if s.Outline != "" {
		doc, err := mdpdf.TranslateFile(input, logger, s.translateOptions()...)
		if err != nil {
			return reportError(stderr, input, err)
		}
		if err := mdpdf.WriteOutline(stdout, doc, s.Outline, terminalWidth(stdout, defaultWidth)); err != nil {
			fmt.Fprintf(stderr, "outline: %v\n", err)
			return exitFailure
		}
		return exitOK
	}

	if output == "-" {
		if isTerminal(stdout) {
			fmt.Fprintln(stderr, "refusing to write PDF to terminal; use -o/--output")
			return exitUsage
		}
		doc, err := mdpdf.TranslateFile(input, logger, s.translateOptions()...)
		if err != nil {
			return reportError(stderr, input, err)
		}
		if err := pdf.Render(pdf.RenderRequest{Document: doc, Writer: stdout, Config: s.pdfConfig(), Logger: logger}); err != nil {
			return reportError(stderr, input, err)
		}
		return exitOK
	}

	res, err := pdf.ConvertFile(pdf.ConvertRequest{
		Source:  input,
		Output:  output,
		Config:  s.pdfConfig(),
		Logger:  logger,
		Options: s.translateOptions(),
	})
	if err != nil {
		return reportError(stderr, input, err)
	}
	fmt.Fprintf(stdout, "PDF created successfully: %s (%s, %d %s)\n",
		res.Output, humanize.Bytes(uint64(res.Bytes)), res.Pages, plural(res.Pages, "page", "pages"))
	return exitOK
}

func reportError(w io.Writer, input string, err error) int {
	code := exitCode(err)
	switch code {
	case exitNotFound:
		fmt.Fprintf(w, "Error: %s not found\n", input)
	case exitUnreadable:
		fmt.Fprintf(w, "Error: cannot read %s: %v\n", input, err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case mdpdf.IsSourceNotFound(err):
		return exitNotFound
	case mdpdf.IsSourceUnreadable(err):
		return exitUnreadable
	case pdf.IsConfigInvalid(err):
		return exitUsage
	default:
		return exitFailure
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

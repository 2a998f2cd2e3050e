package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line options.
type cliFlags struct {
	onePage     bool
	onePageSet  bool // whether --one-page was given, so it can override config either way
	output      string
	outputDir   string
	headerColor string
	fontScheme  string
	engine      string
	timeout     string
	config      string
	openPDF     bool
	html        bool
	htmlOnly    bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses the command line and returns the flags and the
// positional arguments (the input Markdown file).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("resume2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVarP(&f.onePage, "one-page", "1", false, "compress formatting to fit a single page")
	fs.StringVarP(&f.output, "output", "o", "", "output filename (default: <input>_one_page.pdf or <input>_full.pdf)")
	fs.StringVar(&f.outputDir, "output-dir", "", "output directory (default: output)")
	fs.StringVar(&f.headerColor, "header-color", "", "header banner color: hex #RRGGBB or \"white\"")
	fs.StringVar(&f.fontScheme, "font-scheme", "", "font scheme: modern, classic, typewriter")
	fs.StringVar(&f.engine, "engine", "", "PDF engine: rod, chromedp")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g. 30s, 2m)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.openPDF, "open-pdf", false, "open the generated PDF in the system viewer")
	fs.BoolVar(&f.html, "html", false, "write the intermediate HTML alongside the PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF generation")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.onePageSet = fs.Changed("one-page")
	return f, fs.Args(), nil
}

// printUsage writes the command synopsis and flag help.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `resume2pdf - convert a Markdown résumé to a styled PDF

Usage:
  resume2pdf [flags] <resume.md>

Flags:
  -1, --one-page              compress formatting to fit a single page
  -o, --output string         output filename
      --output-dir string     output directory (default: output)
      --header-color string   banner color: hex #RRGGBB or "white"
      --font-scheme string    font scheme: modern, classic, typewriter
      --engine string         PDF engine: rod (default), chromedp
  -t, --timeout string        PDF generation timeout (e.g. 30s, 2m)
  -c, --config string         config file name or path
      --open-pdf              open the generated PDF after creation
      --html                  write the intermediate HTML alongside the PDF
      --html-only             write HTML only, skip PDF generation
  -q, --quiet                 only show errors
  -v, --verbose               show detailed progress
      --version               print version and exit
`)
}

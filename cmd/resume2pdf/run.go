package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	resume2pdf "github.com/resumekit/go-resume2pdf"
	"github.com/resumekit/go-resume2pdf/internal/fileutil"
	"github.com/resumekit/go-resume2pdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// filePermissions is used for generated PDF and HTML files.
const filePermissions = 0o644

// settings is the merged result of defaults, config file, and flags.
// Flags win over config, config wins over defaults.
type settings struct {
	onePage     bool
	headerColor string
	fontScheme  string
	engine      string
	timeout     time.Duration
	output      string
	outputDir   string
	openPDF     bool
	html        bool
	htmlOnly    bool
	quiet       bool
	verbose     bool
}

// resolveSettings merges flags over the config file over built-in defaults.
func resolveSettings(f *cliFlags, cfg *Config) (*settings, error) {
	onePage := cfg.Render.OnePage
	if f.onePageSet {
		onePage = f.onePage
	}

	s := &settings{
		onePage:     onePage,
		headerColor: firstNonEmpty(f.headerColor, cfg.Style.HeaderColor, resume2pdf.DefaultHeaderColor),
		fontScheme:  firstNonEmpty(f.fontScheme, cfg.Style.FontScheme, resume2pdf.DefaultFontScheme),
		engine:      firstNonEmpty(f.engine, cfg.Render.Engine, resume2pdf.EngineRod),
		output:      f.output,
		outputDir:   firstNonEmpty(f.outputDir, cfg.Output.Dir, "output"),
		openPDF:     f.openPDF,
		html:        f.html,
		htmlOnly:    f.htmlOnly,
		quiet:       f.quiet,
		verbose:     f.verbose,
	}

	if raw := firstNonEmpty(f.timeout, cfg.Render.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q (want a positive duration like 30s)", ErrInvalidTimeout, raw)
		}
		s.timeout = d
	}
	return s, nil
}

// renderer is the slice of the library service the CLI needs; it allows
// tests to run without a browser.
type renderer interface {
	Convert(ctx context.Context, input resume2pdf.Input) ([]byte, error)
	RenderHTML(ctx context.Context, input resume2pdf.Input) (string, error)
}

// Compile-time interface check.
var _ renderer = (*resume2pdf.Service)(nil)

// run parses arguments, builds the service, and executes the render.
func run(args []string, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stderr, "resume2pdf %s\n", Version)
		return nil
	}

	if len(positional) < 1 {
		printUsage(stderr)
		return ErrNoInput
	}
	inputPath := positional[0]

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	s, err := resolveSettings(flags, cfg)
	if err != nil {
		return err
	}

	opts := []resume2pdf.Option{resume2pdf.WithEngine(s.engine)}
	if s.timeout > 0 {
		opts = append(opts, resume2pdf.WithTimeout(s.timeout))
	}
	svc, err := resume2pdf.New(opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := execute(context.Background(), svc, inputPath, s, stderr); err != nil {
		return withHints(err, s)
	}
	return nil
}

// execute reads the input, renders, writes the artifacts, and optionally
// launches the viewer.
func execute(ctx context.Context, svc renderer, inputPath string, s *settings, stderr io.Writer) error {
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	input := resume2pdf.Input{
		Markdown: string(content),
		Mode:     mode(s.onePage),
		Style: resume2pdf.Style{
			HeaderColor: s.headerColor,
			FontScheme:  s.fontScheme,
		},
	}

	pdfPath := resolveOutputPath(inputPath, s)
	if err := fileutil.EnsureDir(filepath.Dir(pdfPath)); err != nil {
		return fmt.Errorf("%v%s", err, hints.ForOutputDirectory())
	}

	if !s.quiet {
		fmt.Fprintf(stderr, "Converting %s (%s mode)...\n", inputPath, modeName(s.onePage))
	}

	if s.html || s.htmlOnly {
		htmlContent, err := svc.RenderHTML(ctx, input)
		if err != nil {
			return err
		}
		htmlPath := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".html"
		if err := os.WriteFile(htmlPath, []byte(htmlContent), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !s.quiet {
			fmt.Fprintf(stderr, "Created %s\n", htmlPath)
		}
		if s.htmlOnly {
			return nil
		}
	}

	start := time.Now()
	pdfBytes, err := svc.Convert(ctx, input)
	if err != nil {
		return err
	}
	if err := os.WriteFile(pdfPath, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !s.quiet {
		fmt.Fprintf(stderr, "Created %s (%.1f KB)\n", pdfPath, float64(len(pdfBytes))/1024)
	}
	if s.verbose {
		fmt.Fprintf(stderr, "PDF generation took %s\n", time.Since(start).Round(time.Millisecond))
	}

	if s.openPDF {
		if err := openViewer(pdfPath); err != nil {
			// Viewer launch is best-effort; the artifact is already written.
			fmt.Fprintf(stderr, "warning: could not open viewer: %v\n", err)
		}
	}
	return nil
}

// resolveOutputPath determines the PDF path from the output flag or the
// input stem plus a mode suffix, matching the original tool's naming.
func resolveOutputPath(inputPath string, s *settings) string {
	name := s.output
	if name == "" {
		stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		suffix := "_full"
		if s.onePage {
			suffix = "_one_page"
		}
		name = stem + suffix + ".pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	if fileutil.IsFilePath(name) {
		return name // explicit path wins over --output-dir
	}
	return filepath.Join(s.outputDir, name)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// withHints appends actionable hints for common failure scenarios.
func withHints(err error, s *settings) error {
	switch {
	case errors.Is(err, resume2pdf.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect(s.engine))
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		// Validation errors already name the offending value and the valid
		// choices, so they pass through unchanged.
		return err
	}
}

func mode(onePage bool) resume2pdf.Mode {
	if onePage {
		return resume2pdf.ModeOnePage
	}
	return resume2pdf.ModeMultiPage
}

func modeName(onePage bool) string {
	if onePage {
		return "one-page"
	}
	return "multi-page"
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package resume2pdf

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeConverter records the HTML and options it receives and returns a
// deterministic digest of the HTML, so pipeline tests never need a browser.
type fakeConverter struct {
	lastHTML string
	lastOpts *pdfOptions
	calls    int
	closed   bool
	err      error
}

func (f *fakeConverter) ToPDF(_ context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	f.calls++
	f.lastHTML = htmlContent
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	sum := sha256.Sum256([]byte(htmlContent))
	return sum[:], nil
}

func (f *fakeConverter) Close() error {
	f.closed = true
	return nil
}

func newTestService(t *testing.T, opts ...Option) (*Service, *fakeConverter) {
	t.Helper()
	fake := &fakeConverter{}
	svc, err := New(append([]Option{withConverter(fake)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return svc, fake
}

// withConverter injects a converter ahead of engine selection.
func withConverter(c pdfConverter) Option {
	return func(s *Service) { s.pdf = c }
}

const testMarkdown = `# John Doe
**Senior Software Engineer**

[john@example.com](mailto:john@example.com) | San Francisco, CA

## WORK EXPERIENCE

**Tech Corp**
*Jan 2020 – present*

- Led development of microservices

## SKILLS

**Languages:** Go, Python
`

func testInput() Input {
	return Input{Markdown: testMarkdown, Style: DefaultStyle()}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t)
	pdf, err := svc.Convert(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("Convert() returned empty output")
	}

	if !strings.Contains(fake.lastHTML, "<h1>John Doe</h1>") {
		t.Error("converter did not receive the rendered document")
	}
	if fake.lastOpts == nil || fake.lastOpts.MarginInches != 0.75 {
		t.Errorf("margin = %+v, want 0.75 for multi-page mode", fake.lastOpts)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Convert(ctx, testInput())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	second, err := svc.Convert(ctx, testInput())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different output")
	}
}

func TestConvert_OnePageTightensMargins(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t)
	input := testInput()
	input.Mode = ModeOnePage

	if _, err := svc.Convert(context.Background(), input); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if fake.lastOpts.MarginInches >= 0.75 {
		t.Errorf("one-page margin = %v, want tighter than multi-page 0.75", fake.lastOpts.MarginInches)
	}
}

func TestConvert_InputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty markdown",
			input:   Input{Style: DefaultStyle()},
			wantErr: ErrEmptyMarkdown,
		},
		{
			name:    "no top-level heading",
			input:   Input{Markdown: "just text\n", Style: DefaultStyle()},
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "bad header color",
			input:   Input{Markdown: testMarkdown, Style: Style{HeaderColor: "green", FontScheme: "modern"}},
			wantErr: ErrInvalidHeaderColor,
		},
		{
			name:    "bad font scheme",
			input:   Input{Markdown: testMarkdown, Style: Style{HeaderColor: "#112233", FontScheme: "wingdings"}},
			wantErr: ErrUnknownFontScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, fake := newTestService(t)
			_, err := svc.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if fake.calls != 0 {
				t.Error("converter called despite invalid input")
			}
		})
	}
}

func TestConvert_ConverterErrorWrapped(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t)
	fake.err = ErrPDFGeneration

	_, err := svc.Convert(context.Background(), testInput())
	if !errors.Is(err, ErrPDFGeneration) {
		t.Errorf("Convert() error = %v, want ErrPDFGeneration", err)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Convert(ctx, testInput())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
	if fake.calls != 0 {
		t.Error("converter called after cancellation")
	}
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t)
	html, err := svc.RenderHTML(context.Background(), testInput())
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	for _, want := range []string{
		"<h1>John Doe</h1>",
		"<h2>Experience</h2>",
		"<h2>Skills</h2>",
		`<p class="skill">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("RenderHTML() missing %q", want)
		}
	}
	if fake.calls != 0 {
		t.Error("RenderHTML() must not touch the PDF converter")
	}
}

func TestRenderHTML_SectionsReordered(t *testing.T) {
	t.Parallel()

	input := Input{
		Style: DefaultStyle(),
		Markdown: `# Jane
## COURSES
**Some Course**
remote
## SKILLS
Go
## EDUCATION
**School**
2019
`,
	}

	svc, _ := newTestService(t)
	html, err := svc.RenderHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	edu := strings.Index(html, "<h2>Education</h2>")
	skills := strings.Index(html, "<h2>Skills</h2>")
	courses := strings.Index(html, "<h2>Courses</h2>")
	if edu < 0 || skills < 0 || courses < 0 {
		t.Fatalf("missing section headings: edu=%d skills=%d courses=%d", edu, skills, courses)
	}
	if !(edu < skills && skills < courses) {
		t.Errorf("sections out of canonical order: edu=%d skills=%d courses=%d", edu, skills, courses)
	}
}

func TestNew_UnknownEngine(t *testing.T) {
	t.Parallel()

	_, err := New(WithEngine("phantomjs"))
	if !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("New() error = %v, want ErrUnknownEngine", err)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestClose(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t, WithTimeout(5*time.Second))
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !fake.closed {
		t.Error("Close() did not reach the converter")
	}
}

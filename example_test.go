package resume2pdf_test

import (
	"context"
	"fmt"
	"strings"

	resume2pdf "github.com/resumekit/go-resume2pdf"
)

const exampleResume = `# John Doe
**Senior Software Engineer**

[john@example.com](mailto:john@example.com) | San Francisco, CA

## WORK EXPERIENCE

**Tech Corp**
*Jan 2020 – present*

- Led development of microservices

## SKILLS

**Languages:** Go, Python
`

// Example demonstrates rendering a résumé to HTML.
// For PDF output, use Convert instead (requires Chrome).
func Example() {
	svc, err := resume2pdf.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer svc.Close()

	html, err := svc.RenderHTML(context.Background(), resume2pdf.Input{
		Markdown: exampleResume,
		Style:    resume2pdf.DefaultStyle(),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "<h1>John Doe</h1>") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_onePage demonstrates the compressed single-page mode. The sizing
// step shrinks typography and spacing based on the estimated content volume.
func Example_onePage() {
	svc, err := resume2pdf.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer svc.Close()

	html, err := svc.RenderHTML(context.Background(), resume2pdf.Input{
		Markdown: exampleResume,
		Mode:     resume2pdf.ModeOnePage,
		Style:    resume2pdf.DefaultStyle(),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "<style>") {
		fmt.Println("One-page layout generated")
	}
	// Output: One-page layout generated
}

// Example_customStyle demonstrates a white banner with the classic fonts.
func Example_customStyle() {
	svc, err := resume2pdf.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer svc.Close()

	html, err := svc.RenderHTML(context.Background(), resume2pdf.Input{
		Markdown: exampleResume,
		Style: resume2pdf.Style{
			HeaderColor: resume2pdf.BannerWhite,
			FontScheme:  "classic",
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "Georgia") {
		fmt.Println("Classic style applied")
	}
	// Output: Classic style applied
}

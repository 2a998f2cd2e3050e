// Package resume2pdf converts a structured Markdown résumé into a styled,
// paginated PDF with content-aware sizing.
//
// The pipeline parses a constrained Markdown dialect into a document model,
// classifies and reorders sections into canonical order (Education,
// Experience, Skills, Projects, Courses, Other), estimates the rendered
// content volume, resolves typography and spacing from that estimate, builds
// a styled HTML page, and prints it with headless Chrome.
//
// One-page mode compresses fonts, spacing, and margins through a monotonic
// step function over the volume estimate. The fit is a one-shot heuristic
// with no layout measurement: extremely dense content accepts reduced
// readability rather than overflowing, and pathological inputs may still
// span more than one page.
//
// Basic usage:
//
//	svc, err := resume2pdf.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer svc.Close()
//
//	pdf, err := svc.Convert(ctx, resume2pdf.Input{
//		Markdown: content,
//		Mode:     resume2pdf.ModeOnePage,
//		Style:    resume2pdf.DefaultStyle(),
//	})
package resume2pdf

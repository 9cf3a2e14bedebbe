// Package reports builds human-readable markdown reports from engine output
// and renders them to HTML for the web surface.
package reports

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"distlab/domain/dist"
)

// EstimateReport renders one estimate as a markdown document
func EstimateReport(est dist.Estimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", est.Label)
	fmt.Fprintf(&b, "Sample size: %d\n\n", est.SampleSize)
	b.WriteString("| statistic | sample | theoretical |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| mean | %.6f | %.6f |\n", est.SampleMean, est.TheoreticalMean)
	fmt.Fprintf(&b, "| variance | %.6f | %.6f |\n", est.SampleVariance, est.TheoreticalVariance)
	fmt.Fprintf(&b, "| corrected variance | %.6f | n/a |\n", est.CorrectedSampleVariance)
	fmt.Fprintf(&b, "| sigma | %.6f | %.6f |\n", est.SampleSigma, est.TheoreticalSigma)
	return b.String()
}

// ErrorReport renders a two-class misclassification breakdown, including
// each segment's derivation trail.
func ErrorReport(details []dist.ErrorDetail, total float64) string {
	var b strings.Builder
	b.WriteString("# Bayes classification error\n\n")
	fmt.Fprintf(&b, "Total error mass: **%.6f**\n\n", total)
	for i, d := range details {
		fmt.Fprintf(&b, "## Segment %d: [%.4f, %.4f]\n\n", i+1, d.Lower, d.Upper)
		fmt.Fprintf(&b, "- losing class: %s (%s, prior %.2f)\n", d.LosingClass, d.LosingParams.Label(), d.Prior)
		fmt.Fprintf(&b, "- error mass: %.6f\n\n", d.Mass)
		fmt.Fprintf(&b, "%s\n\n", d.Derivation)
	}
	return b.String()
}

// ToHTML renders a markdown report to an HTML fragment
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

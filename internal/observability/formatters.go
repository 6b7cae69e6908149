// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/pixie/outfit-stylist/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGarments outputs a human-readable summary of classified garments.
func (p *Printer) PrintGarments(garments []types.GarmentAttributes) {
	if len(garments) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed %d garment(s):\n\n", len(garments)))

	count := min(len(garments), maxItemsToShow)
	for i := 0; i < count; i++ {
		g := garments[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, g.GarmentType))
		sb.WriteString(fmt.Sprintf("    Color: %s", g.PrimaryColor))
		if g.Material != "" {
			sb.WriteString(fmt.Sprintf("  Material: %s", g.Material))
		}
		sb.WriteString("\n")
		if g.AestheticStyle != "" || g.Fit != "" {
			sb.WriteString(fmt.Sprintf("    Style: %s  Fit: %s\n", g.AestheticStyle, g.Fit))
		}
		if len(g.Occasions) > 0 {
			sb.WriteString(fmt.Sprintf("    Occasions: %s\n", strings.Join(g.Occasions, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(garments) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(garments)-maxItemsToShow))
	}

	p.printBox("CLASSIFIED GARMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStylingResult outputs the rule engine's analysis.
func (p *Printer) PrintStylingResult(result *types.StylingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Base garment: %s\n", result.BaseGarment.GarmentType))
	sb.WriteString(fmt.Sprintf("Harmony:      %s\n", result.ColorAnalysis.HarmonyType))
	sb.WriteString(fmt.Sprintf("Confidence:   %d/100\n", result.ConfidenceScore))

	if result.ColorAnalysis.Primary != "" {
		pairing := strings.Join(result.ColorAnalysis.Complementary, ", ")
		if len(pairing) > 40 {
			pairing = pairing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Pairs with:   %s\n", pairing))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Recommendations[i]))
		}
		if len(result.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("STYLING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContextualAdjustment outputs the weather and trend context.
func (p *Printer) PrintContextualAdjustment(adjustment *types.ContextualAdjustment) {
	if adjustment == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Location:  %s\n", adjustment.Weather.Location))
	sb.WriteString(fmt.Sprintf("Weather:   %s, %s\n",
		adjustment.Adjustments.TemperatureRange, adjustment.Weather.Description))
	sb.WriteString(fmt.Sprintf("Trend fit: %d/75\n", adjustment.TrendAlignment.Score))

	if len(adjustment.Adjustments.Adjustments) > 0 {
		sb.WriteString("\nAdjustments:\n")
		count := min(len(adjustment.Adjustments.Adjustments), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", adjustment.Adjustments.Adjustments[i]))
		}
		if len(adjustment.Adjustments.Adjustments) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n",
				len(adjustment.Adjustments.Adjustments)-maxItemsToShow))
		}
	}

	p.printBox("WEATHER & TREND CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResponse outputs the final recommendation summary.
func (p *Printer) PrintResponse(response *types.RecommendationResponse) {
	if response == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Request:    %s\n", response.RequestID))
	sb.WriteString(fmt.Sprintf("Confidence: %d/100\n", response.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("Image:      %s\n", response.GeneratedImageURL))
	sb.WriteString(fmt.Sprintf("\n%s", response.Explanation))

	p.printBox("RECOMMENDATION", sb.String())
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/darkforge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of the longest bar in the chart
	barWidth = 30
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var strengthColors = map[types.Strength]lipgloss.Color{
	types.VeryWeak:   lipgloss.Color("#ff0000"),
	types.Weak:       lipgloss.Color("#ffaa00"),
	types.Moderate:   lipgloss.Color("#ffff00"),
	types.Strong:     lipgloss.Color("#00ff00"),
	types.VeryStrong: lipgloss.Color("#00ffff"),
}

// Printer renders reports to a terminal or plain writer.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	box      lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer. Colors are
// emitted only when out is a color-capable terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:      out,
		renderer: r,
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1).
			Width(boxWidth),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func (p *Printer) strengthStyle(s types.Strength) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(strengthColors[s]).Bold(s >= types.Strong)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := p.title.Render(title) + "\n\n" + content
	fmt.Fprintln(p.out, p.box.Render(body))
}

// PrintRecord outputs the analysis of a single password.
func (p *Printer) PrintRecord(rec types.AnalysisRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Length:     %d\n", rec.Length))
	sb.WriteString(fmt.Sprintf("Classes:    %s\n", classes(rec.Composition)))
	sb.WriteString(fmt.Sprintf("Entropy:    %.2f bits (alphabet %d)\n", rec.Entropy, rec.AlphabetSize))
	sb.WriteString(fmt.Sprintf("Adjusted:   %.2f bits\n", rec.AdjustedEntropy))
	sb.WriteString(fmt.Sprintf("Strength:   %s (score %d/100)\n",
		p.strengthStyle(rec.Strength).Render(rec.Strength.String()), rec.Score))
	if rec.Estimate != nil {
		sb.WriteString(fmt.Sprintf("zxcvbn:     %d/4, crack time %s\n", rec.Estimate.Score, rec.Estimate.CrackTime))
	}

	sb.WriteString("\n")
	sb.WriteString(patternLines(rec.Patterns))

	p.printBox("PASSWORD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPatterns outputs only the detector results for a password.
func (p *Printer) PrintPatterns(rec types.AnalysisRecord) {
	p.printBox("DETECTED PATTERNS", strings.TrimSuffix(patternLines(rec.Patterns), "\n"))
}

func patternLines(patterns []string) string {
	if len(patterns) == 0 {
		return "No weak patterns detected\n"
	}
	var sb strings.Builder
	sb.WriteString("Weak patterns:\n")
	for _, name := range patterns {
		sb.WriteString(fmt.Sprintf("  • %s\n", name))
	}
	return sb.String()
}

func classes(c types.Composition) string {
	var parts []string
	if c.HasLower() {
		parts = append(parts, fmt.Sprintf("lower %d", c.Lower))
	}
	if c.HasUpper() {
		parts = append(parts, fmt.Sprintf("upper %d", c.Upper))
	}
	if c.HasDigit() {
		parts = append(parts, fmt.Sprintf("digit %d", c.Digit))
	}
	if c.HasSymbol() {
		parts = append(parts, fmt.Sprintf("symbol %d", c.Symbol))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// PrintSummary outputs strength counts and the most frequent patterns.
func (p *Printer) PrintSummary(s Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Passwords analyzed: %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("Mean entropy:       %.2f bits\n\n", s.MeanEntropy))

	for _, sc := range s.ByStrength {
		sb.WriteString(fmt.Sprintf("%-12s %d\n",
			sc.Strength.String(), sc.Count))
	}

	if len(s.Patterns) > 0 {
		sb.WriteString("\nTop patterns:\n")
		count := min(len(s.Patterns), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", s.Patterns[i].Pattern, s.Patterns[i].Count))
		}
		if len(s.Patterns) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(s.Patterns)-maxItemsToShow))
		}
	}

	p.printBox("STRENGTH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChart outputs a horizontal bar chart of the strength distribution.
func (p *Printer) PrintChart(s Summary) {
	largest := 0
	for _, sc := range s.ByStrength {
		largest = max(largest, sc.Count)
	}

	var sb strings.Builder
	for _, sc := range s.ByStrength {
		width := 0
		if largest > 0 {
			width = sc.Count * barWidth / largest
		}
		if sc.Count > 0 && width == 0 {
			width = 1
		}
		bar := p.strengthStyle(sc.Strength).Render(strings.Repeat("█", width))
		sb.WriteString(fmt.Sprintf("%-12s %s %s\n", sc.Strength.String(), bar,
			p.muted.Render(fmt.Sprintf("%d", sc.Count))))
	}

	p.printBox("STRENGTH DISTRIBUTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneration outputs generator statistics and the first preview candidates.
func (p *Printer) PrintGeneration(res *types.GenerationResult, preview int) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates: %d (target %d-%d)\n", len(res.Candidates), res.TargetMin, res.TargetMax))
	sb.WriteString(fmt.Sprintf("Templates:  %d applied, %d skipped\n", res.TemplatesApplied, res.TemplatesSkipped))
	if res.LowYield {
		sb.WriteString("Warning:    fewer candidates than requested\n")
	}
	if res.Truncated {
		sb.WriteString("Note:       output truncated to the target maximum\n")
	}

	count := min(len(res.Candidates), preview)
	if count > 0 {
		sb.WriteString("\nPreview:\n")
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", res.Candidates[i]))
		}
		if len(res.Candidates) > count {
			sb.WriteString(p.muted.Render(fmt.Sprintf("  ... and %d more", len(res.Candidates)-count)))
			sb.WriteString("\n")
		}
	}

	p.printBox("GENERATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

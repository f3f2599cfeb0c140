// Package jobbar displays catalog loading progress in place of the info line.
package jobbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/arcshelf/internal/ui/render"
	"github.com/llehouerou/arcshelf/internal/ui/styles"
)

// Job is one long-running load.
type Job struct {
	Label   string
	Current int
	Total   int  // 0 if unknown
	Done    bool // true once finished
}

// HasProgress returns true if the job has known progress (Total > 0).
func (j Job) HasProgress() bool {
	return j.Total > 0
}

func labelStyle() lipgloss.Style {
	return styles.T().S().Title
}

func progressStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func barFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func barEmptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Render renders the job as one line of the given width, or "" once done.
func Render(job Job, width int) string {
	if job.Done || width <= 0 {
		return ""
	}
	if job.HasProgress() {
		return renderWithProgressBar(job, width)
	}
	return renderWithSpinner(job, width)
}

// renderWithProgressBar renders: "◦ Label  [━━━━────] 42/100"
func renderWithProgressBar(job Job, width int) string {
	countStr := humanize.Comma(int64(job.Current)) + "/" + humanize.Comma(int64(job.Total))
	countWidth := lipgloss.Width(countStr)

	// Layout: spinner(1) + space(1) + label + space(2) + "[" + bar + "]" + space(1) + count
	spinnerWidth := 2
	minBarWidth := 10
	brackets := 2
	spacing := 3
	fixedWidth := spinnerWidth + brackets + spacing + countWidth

	availableForLabel := max(width-fixedWidth-minBarWidth, 10)
	label := render.Pad(render.TruncateEllipsis(job.Label, availableForLabel), availableForLabel)

	barWidth := max(width-availableForLabel-fixedWidth, minBarWidth)

	ratio := min(float64(job.Current)/float64(job.Total), 1)
	filled := int(float64(barWidth) * ratio)

	var result strings.Builder
	result.WriteString(barFilledStyle().Render("◦"))
	result.WriteString(" ")
	result.WriteString(labelStyle().Render(label))
	result.WriteString("  [")
	result.WriteString(barFilledStyle().Render(strings.Repeat("━", filled)))
	result.WriteString(barEmptyStyle().Render(strings.Repeat("─", barWidth-filled)))
	result.WriteString("] ")
	result.WriteString(progressStyle().Render(countStr))
	return result.String()
}

// renderWithSpinner renders: "◦ Label"
func renderWithSpinner(job Job, width int) string {
	label := render.TruncateEllipsis(job.Label, max(width-2, 1))
	return barFilledStyle().Render("◦") + " " + labelStyle().Render(label)
}

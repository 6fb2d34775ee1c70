package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/speclint/speclint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderReport renders a full validation run as a styled string.
func RenderReport(report *domain.RunReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("speclint")
	subtitle := dimStyle.Render("SDD Structure Validation")
	statusStyled := statusStyle(report.Status).Bold(true).Render(strings.ToUpper(report.Status))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + statusStyled))
	b.WriteString("\n\n")

	// ── Checks ──
	for _, chk := range report.Checks {
		if chk.Passed {
			b.WriteString(fmt.Sprintf("  %s  %s\n", passStyle.Render("✓ PASS"), chk.Name))
		} else {
			b.WriteString(fmt.Sprintf("  %s  %s\n", failStyle.Render("✗ FAIL"), chk.Name))
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Findings ──
	renderGroup(&b, errorTagStyle, failStyle, "ERRORS", report.Errors)
	renderGroup(&b, warnTagStyle, warnStyle, "WARNINGS", report.Warnings)
	renderGroup(&b, infoTagStyle, dimStyle, "INFO", report.Info)

	// ── Footer ──
	switch report.Status {
	case domain.StatusFail:
		b.WriteString("  " + failStyle.Render("Validation failed - please fix errors") + "\n")
	case domain.StatusWarn:
		b.WriteString("  " + warnStyle.Render("Validation passed with warnings") + "\n")
	default:
		b.WriteString("  " + passStyle.Render("All SDD structure validations passed!") + "\n")
	}

	if report.CommitHash != "" {
		b.WriteString("  " + faintStyle.Render(fmt.Sprintf("commit %s", report.CommitHash)) + "\n")
	}

	return b.String()
}

func renderGroup(b *strings.Builder, tag, item lipgloss.Style, label string, messages []string) {
	if len(messages) == 0 {
		return
	}

	b.WriteString("  " + tag.Render(fmt.Sprintf("%s (%d)", label, len(messages))) + "\n")
	for _, msg := range messages {
		b.WriteString("    " + item.Render("-") + " " + msg + "\n")
	}
	b.WriteString("\n")
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case domain.StatusFail:
		return lipgloss.NewStyle().Foreground(danger)
	case domain.StatusWarn:
		return lipgloss.NewStyle().Foreground(warning)
	default:
		return lipgloss.NewStyle().Foreground(success)
	}
}

package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Swatches and paper
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Ink      = lipgloss.Color("#F4D03F") // Marker yellow
	Coral    = lipgloss.Color("#FF6B6B")
	Violet   = lipgloss.Color("#6C5CE7")
	Green    = lipgloss.Color("#58D68D")
	Pink     = lipgloss.Color("#FF6B9D")
	Copper   = lipgloss.Color("#DC7633")
	Blue     = lipgloss.Color("#5DADE2")
	Magenta  = lipgloss.Color("#E91E8C")
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ink)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Code/command style
	Code = lipgloss.NewStyle().
		Foreground(Magenta)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// StatusOK returns the pass badge. The text stays "[OK]" so logs and
// scripts can grep for it whether or not colour is on.
func StatusOK() string {
	if !IsTTY {
		return "[OK]"
	}
	return lipgloss.NewStyle().Foreground(Green).Bold(true).Render("[OK]")
}

// StatusFail returns the failure badge
func StatusFail() string {
	if !IsTTY {
		return "[FAIL]"
	}
	return lipgloss.NewStyle().Foreground(Pink).Bold(true).Render("[FAIL]")
}

// FormatBadge returns the badge for a prompt format
func FormatBadge(f artifact.Format) string {
	if !IsTTY {
		return "[" + strings.ToUpper(string(f)) + "]"
	}
	bg := Violet
	if f == artifact.FormatSummarySpec {
		bg = Blue
	}
	return baseBadge.Background(bg).Foreground(White).Render(string(f))
}

// FindingLine renders one validation finding
func FindingLine(f artifact.Finding) string {
	if f.OK() {
		return fmt.Sprintf("%s %s", StatusOK(), f.Path)
	}
	return fmt.Sprintf("%s %s: %s", StatusFail(), RenderWarning(f.Message), f.Path)
}

// ═══════════════════════════════════════════════════════════════════════════════
// LOGO
// ═══════════════════════════════════════════════════════════════════════════════

// Logo returns the banner shown in root help
func Logo() string {
	if !IsTTY {
		return "\n  DESIGN PROMPTS - scaffold and check style prompts\n"
	}

	swatches := []lipgloss.Color{Coral, Ink, Green, Blue, Violet, Magenta}
	var row strings.Builder
	row.WriteString("  ")
	for _, c := range swatches {
		row.WriteString(lipgloss.NewStyle().Foreground(c).Render("██"))
	}

	name := Title.Render("DESIGN PROMPTS")
	tag := Muted.Render("scaffold and check style prompts")
	return fmt.Sprintf("\n%s  %s\n  %s\n", row.String(), name, tag)
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := Title.Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft = 0
	}
	if padRight < 0 {
		padRight = 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// PageFooter closes a report
func PageFooter() string {
	if !IsTTY {
		return ""
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	return lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ◆ " + right)
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Blue)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderError renders text in error style (TTY-aware)
func RenderError(text string) string {
	return Render(Error, text)
}

// RenderWarning renders text in warning style (TTY-aware)
func RenderWarning(text string) string {
	return Render(Warning, text)
}

// RenderCode renders text in code style (TTY-aware)
func RenderCode(text string) string {
	return Render(Code, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

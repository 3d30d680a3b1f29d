// Package display renders sentiment views and keyword clouds for the
// terminal. It depends only on the data model, so the pipeline can swap the
// front end without touching analysis code.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dyike/PulseGo/internal/models"
)

// Display styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(0, 2).
		Width(78)

	positiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))

	neutralStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F59E0B"))

	negativeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#EF4444"))

	dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#EF4444"))

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6"))
)

// maxSampleComments caps how many sample comments a category section shows.
const maxSampleComments = 3

// DisplayWelcomeBanner shows the startup banner.
func DisplayWelcomeBanner() {
	fmt.Println(titleStyle.Render("PulseGo - Reddit Sentiment Analysis"))
	fmt.Println(dimStyle.Render("Paste post URLs, get the mood of the comments."))
	fmt.Println()
}

// ClearScreen clears the terminal screen.
func ClearScreen() {
	fmt.Print("\033[2J\033[H")
}

// RenderView prints one result view: the header, then a section per
// reported category in positive, neutral, negative order.
func RenderView(label string, result *models.PostResult) {
	total := result.TotalComments()

	header := fmt.Sprintf("📊 %s | %s | %d comments", label, result.URL, total)
	fmt.Println(headerStyle.Render(header))
	fmt.Println()

	for _, s := range models.SentimentOrder {
		rec, ok := result.Category(s)
		if !ok {
			fmt.Println(dimStyle.Render(fmt.Sprintf("   (no %s comments reported)", s)))
			fmt.Println()
			continue
		}
		showCategorySection(s, rec)
	}
}

// showCategorySection prints one category: stats line, percentage bar, and
// up to maxSampleComments sample comments.
func showCategorySection(s models.Sentiment, rec models.CategoryRecord) {
	style := categoryStyle(s)

	fmt.Println(style.Render(fmt.Sprintf("%s %s | %d%% (%d comments)",
		categoryIcon(s), strings.ToUpper(s.DisplayName()), rec.Percentage, rec.Count)))
	fmt.Printf("   [%s]\n", percentBar(rec.Percentage))

	if len(rec.Keywords) > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("   %d keyword mentions", len(rec.Keywords))))
	}

	if len(rec.Comments) > 0 {
		fmt.Println("   Sample comments:")
		shown := rec.Comments
		if len(shown) > maxSampleComments {
			shown = shown[:maxSampleComments]
		}
		for _, comment := range shown {
			displayWrappedText("• "+comment, "   ")
		}
	}
	fmt.Println()
}

func categoryStyle(s models.Sentiment) lipgloss.Style {
	switch s {
	case models.SentimentPositive:
		return positiveStyle
	case models.SentimentNegative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

func categoryIcon(s models.Sentiment) string {
	switch s {
	case models.SentimentPositive:
		return "🟢"
	case models.SentimentNegative:
		return "🔴"
	default:
		return "🟡"
	}
}

// percentBar renders a 40-cell bar for a 0-100 percentage.
func percentBar(percentage int) string {
	barWidth := 40
	filledWidth := (percentage * barWidth) / 100
	if filledWidth > barWidth {
		filledWidth = barWidth
	}
	if filledWidth < 0 {
		filledWidth = 0
	}
	return strings.Repeat("█", filledWidth) + strings.Repeat("░", barWidth-filledWidth)
}

// displayWrappedText prints text word-wrapped at 75 columns with the given
// indent on every line.
func displayWrappedText(text, indent string) {
	const maxWidth = 75
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	line := indent + words[0]
	for i := 1; i < len(words); i++ {
		if len(line)+1+len(words[i]) > maxWidth {
			fmt.Println(line)
			line = indent + "  " + words[i]
		} else {
			line += " " + words[i]
		}
	}
	fmt.Println(line)
}

// DisplayError shows a formatted error message.
func DisplayError(message string) {
	fmt.Println(errorStyle.Render("❌ " + message))
}

// DisplayWarning shows a formatted warning message.
func DisplayWarning(message string) {
	fmt.Println(neutralStyle.Render("⚠️  " + message))
}

// DisplaySuccess shows a formatted success message.
func DisplaySuccess(message string) {
	fmt.Println(successStyle.Render("✅ " + message))
}

// DisplayInfo shows a formatted info message.
func DisplayInfo(message string) {
	fmt.Println(infoStyle.Render("ℹ️  " + message))
}

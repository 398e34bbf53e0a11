package assistant

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/resources"
	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	textStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle     = lipgloss.NewStyle().Foreground(theme.TextDim)
	codeStyle    = lipgloss.NewStyle().Foreground(theme.Secondary)
)

func (a *Assistant) View(width, height int) string {
	innerWidth := max(width-4, 20)

	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Adaptive Learning Assistant") + "\n" +
		textStyle.Bold(true).Render("We noticed you might need help") + "\n" +
		dimStyle.Render(fmt.Sprintf("%s at %s", a.opts.Topic, signals.FormatTimestamp(a.opts.Timestamp)))

	footer := a.renderFeedbackBar()

	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer)-4, 4)

	var body string
	if a.loading {
		body = lipgloss.Place(innerWidth, bodyHeight, lipgloss.Center, lipgloss.Center,
			a.spin.View()+" "+dimStyle.Render("Generating personalized resources..."))
	} else {
		labels := make([]string, 0, len(AllTabs()))
		for _, t := range AllTabs() {
			labels = append(labels, t.Label())
		}
		tabs := components.Tabs(labels, int(a.tab))
		content := a.renderTab(innerWidth, bodyHeight-2)
		body = tabs + "\n\n" + clip(content, bodyHeight-2)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(
		header + "\n\n" + body + "\n\n" + footer,
	)
}

func (a *Assistant) renderTab(width, height int) string {
	switch a.tab {
	case TabExplanation:
		return a.renderExplanation(width, height)
	case TabPractice:
		return a.renderPractice(width, height)
	case TabCode:
		return a.renderCode(width)
	case TabResources:
		return a.renderResources(width)
	default:
		return ""
	}
}

func (a *Assistant) renderExplanation(width, height int) string {
	lines := a.opts.Content.ExplanationLines()
	var out []string
	inCode := false
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			continue
		}
		out = append(out, renderMarkdownLine(line, inCode, width))
	}
	start := min(a.scroll, max(0, len(out)-1))
	end := min(len(out), start+max(height, 1))
	return strings.Join(out[start:end], "\n")
}

// renderMarkdownLine styles the small markdown subset used by explanations:
// headings, bold runs, bullets, inline code and fenced code.
func renderMarkdownLine(line string, inCode bool, width int) string {
	if inCode {
		return codeStyle.Render("    " + line)
	}
	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return headingStyle.Render(rest)
	}
	prefix := ""
	if rest, ok := strings.CutPrefix(line, "• "); ok {
		prefix = "  • "
		line = rest
	}
	return prefix + lipgloss.NewStyle().Width(width-len(prefix)).Render(renderInline(line))
}

func renderInline(s string) string {
	var b strings.Builder
	bold := false
	for i, part := range strings.Split(s, "**") {
		if i > 0 {
			bold = !bold
		}
		segments := strings.Split(part, "`")
		for j, seg := range segments {
			switch {
			case j%2 == 1:
				b.WriteString(codeStyle.Render(seg))
			case bold:
				b.WriteString(textStyle.Bold(true).Render(seg))
			default:
				b.WriteString(textStyle.Render(seg))
			}
		}
	}
	return b.String()
}

// renderPractice renders one block per question plus the check action. Blocks
// scroll off the top so the focused one stays visible.
func (a *Assistant) renderPractice(width, height int) string {
	blocks := make([]string, 0, len(a.items)+1)
	for i, item := range a.items {
		focused := i == a.focus
		marker := "  "
		if focused {
			marker = headingStyle.Render("▸ ")
		}
		var b strings.Builder
		switch item.question.Kind {
		case resources.KindMCQ:
			item.choice.Question = fmt.Sprintf("%d. %s", i+1, item.question.Prompt)
			b.WriteString(marker + item.choice.View(focused))
		case resources.KindShort:
			b.WriteString(marker + textStyle.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, item.question.Prompt)) + "\n")
			b.WriteString("    " + item.input.View() + "\n")
			if a.quiz.Checked {
				b.WriteString("    " + dimStyle.Render("Answer: "+item.question.CorrectAnswer) + "\n")
			}
		}
		blocks = append(blocks, lipgloss.NewStyle().Width(width).Render(b.String()))
	}

	if a.quiz.Checked {
		score := a.quiz.Score()
		blocks = append(blocks, theme.Correct.Render(fmt.Sprintf("Great attempt! %d of %d correct. Review the correct answers above.", score, len(a.items))))
	} else {
		check := components.Button{Key: "Enter", Label: "Check Answers", Active: a.focus == len(a.items)}
		blocks = append(blocks, check.View())
	}

	start := 0
	for start < a.focus && blockHeight(blocks[start:a.focus+1]) > height {
		start++
	}
	return strings.Join(blocks[start:], "\n")
}

func blockHeight(blocks []string) int {
	h := 0
	for _, b := range blocks {
		h += lipgloss.Height(b) + 1
	}
	return h
}

func (a *Assistant) renderCode(width int) string {
	c := a.opts.Content
	code := theme.Card.Width(max(width-2, 10)).Render(codeStyle.Render(strings.TrimSpace(c.CodeExample)))
	out := headingStyle.Render("Interactive Code Example") + "\n" + code + "\n"
	if a.codeRan {
		out += textStyle.Render("Output: ") + codeStyle.Render(c.CodeOutput)
	} else {
		out += dimStyle.Render("Press r to run the example")
	}
	return out
}

func (a *Assistant) renderResources(width int) string {
	var rows []string
	for _, r := range a.opts.Content.RankedResources() {
		title := textStyle.Bold(true).MaxWidth(width - 12).Render(r.Title)
		match := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d%% match", r.Relevance))
		gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(match))
		rows = append(rows,
			title+strings.Repeat(" ", gap)+match+"\n"+
				dimStyle.Render(r.Source+" • "+r.Type))
	}
	return strings.Join(rows, "\n\n")
}

func (a *Assistant) renderFeedbackBar() string {
	return dimStyle.Render("Was this helpful?  ") + components.ButtonRow(a.feedback...)
}

func clip(s string, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/ui/components"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	var body string
	switch s.phase {
	case phasePre:
		body = s.renderIntro() + "\n\n" + s.pre.View()
	case phasePractice:
		body = s.renderPractice(width)
	case phasePost:
		body = s.post.View()
	case phaseReflect:
		body = s.renderReflect()
	}

	if s.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(body))
}

func (s *SessionScreen) renderIntro() string {
	title := theme.Title.Render(s.practice.Mode.Icon() + "  " + s.practice.Mode.DisplayName())
	if s.practice.Description == "" {
		return title
	}
	return title + "\n" + theme.Subtitle.Width(56).Render(s.practice.Description)
}

func (s *SessionScreen) renderPractice(width int) string {
	elapsed := s.elapsed()
	var b strings.Builder

	if p := s.practice.Pattern; p != nil {
		ph, left := p.PhaseAt(elapsed)
		cue := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(ph.Cue.Label())
		b.WriteString(cue)
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%ds", int(left.Seconds()+0.999))))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d cycles", p.Cycles(elapsed))))
		b.WriteString("\n\n")
	}

	if prompt := s.practice.PromptAt(elapsed); prompt != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Width(56).
			Render(prompt))
		b.WriteString("\n\n")
	}

	var pct float64
	if s.practice.Duration > 0 {
		pct = float64(elapsed) / float64(s.practice.Duration)
	}
	remaining := int(s.practice.Remaining(elapsed).Seconds())
	barWidth := width / 2
	if barWidth < 30 {
		barWidth = 30
	}
	b.WriteString(components.NewProgressBar("", pct, components.FormatClock(remaining), barWidth).View())

	if !s.canFinish() {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Settle in..."))
	}
	return b.String()
}

func (s *SessionScreen) renderReflect() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Reflection"))
	b.WriteString("\n\n")
	b.WriteString(s.notes.View())
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	msg := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End this practice?") +
			"\n\n" +
			theme.Hint.Render("This session will not be saved."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

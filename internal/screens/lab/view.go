package lab

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/ui/components"
	"github.com/nikverma/physlab/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (l *LabScreen) View(width, height int) string {
	if l.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", l.errMsg))
	}

	if l.confirmQuit {
		return l.renderQuitConfirm(width)
	}

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, l.renderDots(cw))
	sections = append(sections, l.renderPhase(cw))

	if l.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render(l.notice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LabScreen) renderDots(cw int) string {
	seq := phase.Sequence()
	dots := components.NewPhaseDots(l.dotLabels)
	for i, p := range seq {
		if p == l.session.Current() {
			dots.Current = i
		}
		dots.Visited[i] = l.session.Visited(p)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(dots.View())
}

func (l *LabScreen) renderPhase(cw int) string {
	switch l.session.Current() {
	case phase.PhaseHook:
		return l.renderHook(cw)
	case phase.PhasePredict, phase.PhaseTwistPredict:
		return l.renderPredict(cw)
	case phase.PhasePlay, phase.PhaseTwistPlay:
		return l.renderPlay(cw)
	case phase.PhaseReview, phase.PhaseTwistReview:
		return l.renderReview(cw)
	case phase.PhaseTransfer:
		return l.renderTransfer(cw)
	case phase.PhaseTest:
		return l.renderTest(cw)
	case phase.PhaseMastery:
		return l.renderMastery(cw)
	}
	return ""
}

func (l *LabScreen) renderHook(cw int) string {
	game := l.session.Game

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(game.Name)
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(game.Tagline)
	hook := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 6).
		Render(game.Hook)

	return components.Panel(title+"\n"+tagline+"\n\n"+hook, cw)
}

func (l *LabScreen) renderPredict(cw int) string {
	var b strings.Builder
	b.WriteString(l.mc.View())

	if l.answered {
		q, err := l.session.ActiveQuestion()
		if err == nil && q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(cw - 6).
				Render(q.Explanation))
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("Prediction locked in. Time to find out."))
	}

	return components.Panel(b.String(), cw)
}

func (l *LabScreen) renderPlay(cw int) string {
	model := l.session.Model()

	var b strings.Builder

	if l.session.Current() == phase.PhaseTwistPlay {
		intro := l.session.Game.Twist.Intro
		if intro != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Width(cw - 6).
				Render("⚡ " + intro))
			b.WriteString("\n\n")
		}
	}

	for i, s := range l.sliders {
		if l.editing && i == l.focus {
			spec := l.session.ActiveParams()[i]
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Render(fmt.Sprintf("%s (%.3g to %.3g %s): ", spec.Label, spec.Min, spec.Max, spec.Unit)))
			b.WriteString(l.input.View())
		} else {
			b.WriteString(s.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(components.Plot(model.Curve(48), model.CurveLabel(), cw-6, 7))
	b.WriteString("\n\n")

	var readouts []string
	for _, r := range model.Readouts() {
		readouts = append(readouts, fmt.Sprintf("%s: %.3g %s", r.Label, r.Value, r.Unit))
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Join(readouts, "   ")))

	return components.Panel(b.String(), cw)
}

func (l *LabScreen) renderReview(cw int) string {
	game := l.session.Game
	text := game.Review
	if l.session.Current() == phase.PhaseTwistReview {
		text = game.Twist.Review
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 6).
		Render(text))

	if review := l.session.ActiveReview(); review != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("✎ " + review.Headline))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw - 6).
			Render(review.Explanation))
		if review.EverydayExample != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Width(cw - 6).
				Render("Everyday: " + review.EverydayExample))
		}
		if review.FollowUpQuestion != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Width(cw - 6).
				Render("Think about it: " + review.FollowUpQuestion))
		}
	} else if l.waitingReview {
		frame := spinnerFrames[l.spin%len(spinnerFrames)]
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(frame + " the coach is thinking..."))
	}

	return components.Panel(b.String(), cw)
}

func (l *LabScreen) renderTransfer(cw int) string {
	prompts := l.session.Game.Transfer
	idx := l.session.State.TransferIndex
	if idx >= len(prompts) {
		idx = len(prompts) - 1
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Where else does this show up?  (%d/%d)", idx+1, len(prompts))))
	b.WriteString("\n\n")
	if idx >= 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw - 6).
			Render(prompts[idx]))
	}

	return components.Panel(b.String(), cw)
}

func (l *LabScreen) renderTest(cw int) string {
	session := l.session
	total := len(session.Game.Test)

	if session.TestDone() && !l.testFeedback {
		score := session.TestScorePct()
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(fmt.Sprintf("Quiz done: %d/%d correct (%d%%)", session.State.QuizCorrect, total, score)))
		b.WriteString("\n\n")
		if session.Passed() {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Success).
				Render("That clears the bar. On to mastery."))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render("Below the bar this time. The loop will bring you back around."))
		}
		return components.Panel(b.String(), cw)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", min(session.State.QuizIndex+1, total), total)))
	b.WriteString("\n\n")

	if l.testFeedback {
		answered := session.State.QuizIndex - 1
		q := session.Game.Test[answered]
		if l.lastTestCorrect {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite."))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("Answer: " + q.Options[q.Answer]))
		}
		if q.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(cw - 6).
				Render(q.Explanation))
		}
	} else {
		b.WriteString(l.mc.View())
	}

	return components.Panel(b.String(), cw)
}

func (l *LabScreen) renderMastery(cw int) string {
	session := l.session

	var b strings.Builder
	if session.Passed() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("⚗ LAB MASTERED"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw - 6).
			Render(session.Game.Mastery))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("End of the run"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw - 6).
			Render(fmt.Sprintf("You scored %d%%. Mastery needs %d%%. Another pass through the lab usually does it.",
				session.TestScorePct(), content.PassPct)))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Enter loops back to the hook for another run."))

	return components.Panel(b.String(), cw)
}

func (l *LabScreen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this lab?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end lab"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

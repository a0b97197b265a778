// Package tui provides an optional live view of a running simulation: a
// spin feed, a progress bar and the continue-after-win prompt. The engine
// stays fully usable headless; this package only observes it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/roulettelab/internal/report"
	"github.com/lox/roulettelab/internal/sim"
)

const feedLength = 8

// SpinMsg carries one settled spin into the model.
type SpinMsg sim.Record

// PromptMsg asks the user whether to keep playing after a win.
type PromptMsg struct {
	Status sim.Status
	Answer chan<- bool
}

// DoneMsg delivers the finished run.
type DoneMsg struct {
	Result *sim.Result
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the bubbletea model for watch mode.
type Model struct {
	system     string
	totalSpins int

	progress progress.Model
	feed     []sim.Record
	balances []float64
	spins    int
	balance  float64

	prompting bool
	status    sim.Status
	answer    chan<- bool

	result   *sim.Result
	quitting bool
}

func newModel(system string, totalSpins int, initialBalance float64) Model {
	return Model{
		system:     system,
		totalSpins: totalSpins,
		balance:    initialBalance,
		progress:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SpinMsg:
		rec := sim.Record(msg)
		m.spins = rec.Spin
		m.balance = rec.Balance
		m.balances = append(m.balances, rec.Balance)
		m.feed = append(m.feed, rec)
		if len(m.feed) > feedLength {
			m.feed = m.feed[len(m.feed)-feedLength:]
		}
		return m, nil

	case PromptMsg:
		m.prompting = true
		m.status = msg.Status
		m.answer = msg.Answer
		return m, nil

	case DoneMsg:
		m.result = msg.Result
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.prompting {
		switch key {
		case "y", "Y", "enter":
			m.answer <- true
			m.prompting = false
		case "n", "N", "q", "ctrl+c":
			m.answer <- false
			m.prompting = false
		}
		return m, nil
	}
	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("roulettelab — %s", m.system)))
	b.WriteString("\n\n")

	frac := 0.0
	if m.totalSpins > 0 {
		frac = float64(m.spins) / float64(m.totalSpins)
	}
	b.WriteString(m.progress.ViewAs(frac))
	b.WriteString(fmt.Sprintf("  spin %d/%d\n", m.spins, m.totalSpins))
	b.WriteString(fmt.Sprintf("balance $%.2f\n\n", m.balance))

	if len(m.balances) > 1 {
		b.WriteString(dimStyle.Render(report.Sparkline(m.balances, 60)))
		b.WriteString("\n\n")
	}

	for _, rec := range m.feed {
		line := fmt.Sprintf("#%-5d %-4s wager $%.2f  net %+.2f  balance $%.2f",
			rec.Spin, rec.Outcome, rec.Wager, rec.Net, rec.Balance)
		if rec.Won {
			b.WriteString(winStyle.Render(line))
		} else {
			b.WriteString(lossStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"You won! Balance $%.2f (net %+.2f). Continue gambling? [y/n]",
			m.status.Balance, m.status.Net)))
		b.WriteString("\n")
	} else if m.result == nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("press q to stop watching"))
		b.WriteString("\n")
	}

	return b.String()
}

// promptContinue builds the watch-mode continue decision. Each prompt is
// sent to the viewer and answered by a key press; once quit closes, pending
// and future prompts resolve to "stop" so the engine never blocks on a
// viewer that is gone.
func promptContinue(send func(PromptMsg), quit <-chan struct{}) sim.ContinueFunc {
	return func(status sim.Status) bool {
		answer := make(chan bool, 1)
		send(PromptMsg{Status: status, Answer: answer})
		select {
		case ok := <-answer:
			return ok
		case <-quit:
			return false
		}
	}
}

// Watch runs the engine under a live view and returns the result, or nil
// if the viewer quit before the run finished.
func Watch(cfg sim.Config) (*sim.Result, error) {
	p := tea.NewProgram(newModel(cfg.Strategy.Name(), cfg.MaxSpins, cfg.Balance))
	quit := make(chan struct{})

	cfg.OnSpin = func(rec sim.Record) {
		p.Send(SpinMsg(rec))
	}
	if cfg.PromptAfterWin {
		cfg.Continue = promptContinue(func(msg PromptMsg) { p.Send(msg) }, quit)
	}

	engine, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}

	go func() {
		p.Send(DoneMsg{Result: engine.Run()})
	}()

	final, err := p.Run()
	close(quit)
	if err != nil {
		return nil, err
	}
	return final.(Model).result, nil
}

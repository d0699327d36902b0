package tui

import (
	"fmt"
	"strings"

	"flashcards/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddSource
	modeAddTranslation
	modeDelete
)

const (
	promptSource      = "Sisestage vene sõna"
	promptTranslation = "Sisestage ingliskeelne tõlge"
	promptDelete      = "Sisestage kustutatav venekeelne sõna"
	hiddenTranslation = "• • •"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("235")).
			Padding(1, 4).
			Margin(1, 2).
			Width(40).
			Align(lipgloss.Center)

	wordStyle = lipgloss.NewStyle().Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// Model is the terminal carousel over a WordStore
type Model struct {
	store  *service.WordStore
	logger *zap.Logger

	card          service.Carousel
	mode          mode
	input         textinput.Model
	pendingSource string

	status    string
	statusErr bool
}

// New creates a carousel model. store must already be loaded.
func New(store *service.WordStore, logger *zap.Logger) Model {
	input := textinput.New()
	input.CharLimit = 200

	return Model{
		store:  store,
		logger: logger,
		input:  input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode != modeBrowse {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode != modeBrowse {
		return m.updateInput(key)
	}

	n := m.store.Len()
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "right", "l", "n":
		m.card.Next(n)
		m.status = ""
	case "left", "h", "p":
		m.card.Prev(n)
		m.status = ""
	case " ", "enter":
		if n > 0 {
			m.card.Toggle()
		}
	case "a":
		return m.prompt(modeAddSource, promptSource)
	case "d":
		return m.prompt(modeDelete, promptDelete)
	}
	return m, nil
}

func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeBrowse
		m.pendingSource = ""
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) prompt(next mode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = next
	m.status = ""
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m, m.input.Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddSource:
		m.pendingSource = value
		return m.prompt(modeAddTranslation, promptTranslation)

	case modeAddTranslation:
		words, err := m.store.AddWord(m.pendingSource, value)
		if err == nil || len(words) > 0 {
			m.card.Last(len(words))
		}
		m.setResult(err, fmt.Sprintf("Lisatud: %s", m.pendingSource))

	case modeDelete:
		_, found, err := m.store.DeleteWord(value)
		m.card.Clamp(m.store.Len())
		switch {
		case err != nil:
			m.setResult(err, "")
		case !found:
			m.status = "Sõna ei leitud: " + value
			m.statusErr = true
		default:
			m.setResult(nil, "Kustutatud: "+value)
		}
	}

	m.mode = modeBrowse
	m.pendingSource = ""
	m.input.Blur()
	m.input.Reset()
	return m, nil
}

func (m *Model) setResult(err error, success string) {
	if err != nil {
		m.logger.Error("Word store operation failed", zap.Error(err))
		m.status = "Viga: " + err.Error()
		m.statusErr = true
		return
	}
	m.status = success
	m.statusErr = false
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sõnakaardid"))
	b.WriteString("\n")

	pair, ok := m.store.At(m.card.Index)
	if !ok {
		b.WriteString(cardStyle.Render("Sõnu pole"))
	} else {
		translation := hiddenTranslation
		if m.card.Revealed {
			translation = pair.Translation
		}
		body := fmt.Sprintf("%s\n\n%s\n\n%d/%d",
			wordStyle.Render(pair.Source), translation, m.card.Index+1, m.store.Len())
		b.WriteString(cardStyle.Render(body))
	}
	b.WriteString("\n")

	if m.mode != modeBrowse {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: kinnita • esc: tühista"))
	} else {
		reveal := "Näita tõlget"
		if m.card.Revealed {
			reveal = "Peida tõlge"
		}
		b.WriteString(helpStyle.Render(
			"←/→: sirvi • tühik: " + reveal + " • a: Lisa sõna • d: Kustuta sõna • q: välju"))
	}
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	return b.String()
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/render"
)

const (
	fieldTrials = iota
	fieldProbability
	fieldCount
)

type model struct {
	theme Theme
	deps  Deps

	inputs []textinput.Model
	focus  int

	computing bool
	report    *domain.Report
	reportID  string
	toast     string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	inputs := make([]textinput.Model, fieldCount)

	n := textinput.New()
	n.Prompt = "Trials (n):          "
	n.Placeholder = "e.g. 5"
	n.CharLimit = 9
	n.Focus()
	inputs[fieldTrials] = n

	p := textinput.New()
	p.Prompt = "Success prob. (p):   "
	p.Placeholder = "0..1"
	p.CharLimit = 24
	p.SetValue(strconv.FormatFloat(deps.DefaultProbability, 'g', -1, 64))
	inputs[fieldProbability] = p

	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		inputs: inputs,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case binomialDoneMsg:
		m.computing = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if msg.report.Binomial == nil {
				m.report = nil
				return m, nil
			}
		} else {
			m.toast = ""
		}
		r := msg.report
		m.report = &r
		m.reportID = msg.id
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount), nil

		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil

		case "enter":
			if m.focus < fieldCount-1 {
				return m.setFocus(m.focus + 1), nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) setFocus(i int) model {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// submit parses the form. Range checks on n and p are left to the distribution.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.computing {
		return m, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldTrials].Value()))
	if err != nil {
		m.toast = "Trials must be a whole number"
		return m.setFocus(fieldTrials), nil
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldProbability].Value()), 64)
	if err != nil {
		m.toast = "Probability must be a number"
		return m.setFocus(fieldProbability), nil
	}

	m.computing = true
	m.toast = ""
	return m, cmdComputeBinomial(m.deps, n, p)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("probtable") + "\n" +
		m.theme.Subtitle.Render("Binomial probability tables") + "\n"

	var form strings.Builder
	for i, in := range m.inputs {
		line := in.View()
		if i == m.focus {
			line = m.theme.Focused.Render("> ") + line
		} else {
			line = "  " + line
		}
		form.WriteString(line)
		form.WriteByte('\n')
	}
	if m.toast != "" {
		form.WriteString("\n" + m.theme.Error.Render(m.toast) + "\n")
	}
	if m.computing {
		form.WriteString("\n" + m.theme.Help.Render("computing…") + "\n")
	}

	body := header + "\n" + m.theme.Card.Render(strings.TrimRight(form.String(), "\n"))

	if m.report != nil {
		var out strings.Builder
		if err := render.Pretty(&out, *m.report, m.theme.Table, m.deps.Precision); err != nil {
			out.WriteString(err.Error())
		}
		if m.reportID != "" {
			out.WriteString(fmt.Sprintf("Saved as %s\n", m.reportID))
		}
		body += "\n\n" + out.String()
	}

	help := m.theme.Help.Render("tab/↑/↓ switch field • enter compute • esc quit")
	return wrap.Render(body + "\n" + help)
}

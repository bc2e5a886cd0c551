// Package tui implements the interactive chat window.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/autovisory/autovisory/internal/advisor"
	"github.com/autovisory/autovisory/internal/chat"
)

// Theme holds the color scheme for the chat display.
type Theme struct {
	User      lipgloss.Color
	Assistant lipgloss.Color
	Hint      lipgloss.Color
	Error     lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	User:      lipgloss.Color("#5FAFD7"), // light blue
	Assistant: lipgloss.Color("#00D787"), // green
	Hint:      lipgloss.Color("#6C6C6C"), // dim gray
	Error:     lipgloss.Color("#FF005F"), // red
}

func (t Theme) userStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.User).Bold(true)
}

func (t Theme) assistantStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Assistant).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// replyMsg carries the assistant's reply for one turn.
type replyMsg struct {
	text string
}

// chatModel is the bubbletea model for the chat window.
type chatModel struct {
	ctx    context.Context
	engine *advisor.Engine
	log    *chat.Log

	// shown mirrors the turns already visible; the log itself is only
	// touched inside turn commands, one at a time.
	shown []chat.Turn

	input    textinput.Model
	spin     spinner.Model
	theme    Theme
	width    int
	thinking bool
	quitting bool
}

// newChatModel creates the chat model seeded with the greeting.
func newChatModel(ctx context.Context, engine *advisor.Engine, log *chat.Log) chatModel {
	input := textinput.New()
	input.Placeholder = "What would you like to know?"
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return chatModel{
		ctx:    ctx,
		engine: engine,
		log:    log,
		shown:  log.Turns(),
		input:  input,
		spin:   spin,
		theme:  defaultTheme,
		width:  80,
	}
}

// Init returns the initial command.
func (m chatModel) Init() tea.Cmd {
	return m.input.Focus()
}

// Update handles messages and returns the updated model.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case replyMsg:
		m.thinking = false
		m.shown = append(m.shown, chat.Turn{Role: chat.RoleAssistant, Content: msg.text})
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts one advisory turn unless one is already in flight.
func (m chatModel) submit() (tea.Model, tea.Cmd) {
	if m.thinking {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.thinking = true
	m.shown = append(m.shown, chat.Turn{Role: chat.RoleUser, Content: text})

	return m, tea.Batch(m.spin.Tick, m.turnCmd(text))
}

// turnCmd runs the engine for one user utterance. Runs in a separate
// goroutine (command) to avoid blocking Update(); only one turn is in
// flight at a time, so the log stays single-owner.
func (m chatModel) turnCmd(text string) tea.Cmd {
	engine, log, ctx := m.engine, m.log, m.ctx
	return func() tea.Msg {
		return replyMsg{text: engine.HandleTurn(ctx, log, text)}
	}
}

// View renders the transcript, the in-flight indicator and the input.
func (m chatModel) View() tea.View {
	var b strings.Builder

	for _, turn := range m.shown {
		switch turn.Role {
		case chat.RoleUser:
			b.WriteString(m.theme.userStyle().Render("You") + ": " + turn.Content + "\n\n")
		case chat.RoleAssistant:
			b.WriteString(m.theme.assistantStyle().Render("Autovisory") + ":\n")
			b.WriteString(m.renderMarkdown(turn.Content) + "\n")
		}
	}

	if m.thinking {
		b.WriteString(m.spin.View() + m.theme.hintStyle().Render("Thinking...") + "\n")
	} else if !m.quitting {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(m.theme.hintStyle().Render("Enter to send, Esc to quit") + "\n")
	}

	return tea.NewView(b.String())
}

// renderMarkdown renders assistant Markdown for the terminal, falling
// back to the raw text when rendering fails.
func (m chatModel) renderMarkdown(content string) string {
	width := m.width
	if width > 100 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content + "\n"
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return out
}

// Run starts the interactive chat window over the given session log.
func Run(ctx context.Context, engine *advisor.Engine, log *chat.Log) error {
	p := tea.NewProgram(newChatModel(ctx, engine, log), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-wars/internal/config"
	"github.com/vovakirdan/space-wars/internal/core"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items    []config.DifficultyPreset
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected config.DifficultyPreset
}

// NewMenuModel creates a new menu model with the cursor on the normal preset.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := config.Presets()
	cursor := 0
	for i, p := range items {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor]
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Render(menuTitleStyle.Render("S P A C E   W A R S")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(menuSubtitleStyle.Render("Select difficulty")))
	b.WriteString("\n\n")

	for i, p := range m.items {
		cursor := "  "
		style := menuItemStyle
		if i == m.cursor {
			cursor = "> "
			style = menuSelectedStyle
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, p, p.Description())
		b.WriteString(center.Render(style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m MenuModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		Preset: m.Selected(),
		Config: m.Config(),
	}, nil
}

package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the interactive board UI and blocks until it exits.
func Run() error {
	_, err := tea.NewProgram(NewModel(), tea.WithAltScreen()).Run()
	return err
}

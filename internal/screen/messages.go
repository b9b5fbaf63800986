package screen

import tea "charm.land/bubbletea/v2"

// ToastMsg asks the root model to flash a transient message in the footer.
type ToastMsg struct {
	Text    string
	IsError bool
}

// Toast returns a command that emits a ToastMsg.
func Toast(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Text: text, IsError: isError}
	}
}

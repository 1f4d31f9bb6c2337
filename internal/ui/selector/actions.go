package selector

// SelectedMsg is emitted when the user picks a library.
type SelectedMsg struct {
	Entry Entry
}

// CancelMsg is emitted when the user quits from the selector.
type CancelMsg struct{}

// ErrorMsg is emitted when the chosen entry cannot be opened.
type ErrorMsg struct {
	Message string
}

package ports

import "os/exec"

// EditorOpener defines the interface for opening definitions in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor
	// so the TUI can hand the terminal over with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}

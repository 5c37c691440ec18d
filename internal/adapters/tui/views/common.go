package views

import (
	"github.com/hashicorp/go-hclog"

	"flow/internal/domain"
	"flow/internal/ports"
)

// Services bundles the ports and settings the views run commands against
type Services struct {
	Repo    ports.DiagramRepository
	Cache   ports.TableCache // may be nil
	Solver  ports.Satisfier
	Counter ports.Counter
	Logger  hclog.Logger
	MaxVars int
	Workers int
}

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

type SwitchToBrowserMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToDiagramMsg struct {
	Diagram domain.DiagramInfo
}

type SwitchToDeleteMsg struct {
	Diagram domain.DiagramInfo
}

// OpenEditorMsg asks the app to hand the terminal to $EDITOR
type OpenEditorMsg struct {
	Path string
}

// EditorFinishedMsg is delivered when the editor exits
type EditorFinishedMsg struct {
	Err error
}

type DeleteSuccessMsg struct {
	Message string
}

type DeleteErrMsg struct {
	Err error
}

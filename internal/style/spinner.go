package style

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner is shown while a large grid or contour computation runs.
type Spinner interface {
	SetSuffix(suffix string)
	SetFinalMSG(finalMSG string)
	Start()
	Stop()
}

// TerminalSpinner is the interactive implementation.
type TerminalSpinner struct {
	spinner *spinner.Spinner
}

func NewTerminalSpinner(cs []string, d time.Duration, options ...spinner.Option) *TerminalSpinner {
	return &TerminalSpinner{
		spinner: spinner.New(cs, d, options...),
	}
}

func (s *TerminalSpinner) SetSuffix(suffix string) {
	s.spinner.Suffix = suffix
}

func (s *TerminalSpinner) SetFinalMSG(finalMSG string) {
	s.spinner.FinalMSG = finalMSG
}

func (s *TerminalSpinner) Start() {
	s.spinner.Start()
}

func (s *TerminalSpinner) Stop() {
	s.spinner.Stop()
}

// noopSpinner suppresses spinner output when the destination is not a
// terminal or during tests.
type noopSpinner struct{}

func (noopSpinner) SetSuffix(string)   {}
func (noopSpinner) SetFinalMSG(string) {}
func (noopSpinner) Start()             {}
func (noopSpinner) Stop()              {}

// NewSpinner returns a spinner writing to w.
func NewSpinner(w io.Writer) Spinner {
	if os.Getenv("CPLOT_TEST") == "true" {
		return noopSpinner{}
	}

	return NewTerminalSpinner(spinner.CharSets[9], 100*time.Millisecond,
		spinner.WithWriter(w),
		spinner.WithColor("cyan"))
}

var finalMsgColor = color.New(color.FgGreen).SprintFunc()

// FinishSpinner stops sp, replacing the spinner line with a done message.
func FinishSpinner(sp Spinner, message string) {
	sp.SetFinalMSG(finalMsgColor("✓ "+message) + "\n")
	sp.Stop()
}

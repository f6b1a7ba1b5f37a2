package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/worktime/pkg/domain"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4a844"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05252"))
)

// Sink receives the outcome of each executed command and renders it. The
// controller never writes to the console itself.
type Sink interface {
	Print(cmd domain.Command, msg string, err error)
}

// Console renders results to the terminal: successes on out, refusals and
// failures on errOut, each category in its own color.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole builds a Console writing to the given streams.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

func (c *Console) Print(cmd domain.Command, msg string, err error) {
	name := domain.Name(cmd)
	switch {
	case err == nil:
		fmt.Fprintln(c.out, okStyle.Render(msg))
	case domain.IsLogic(err):
		fmt.Fprintln(c.errOut, warnStyle.Render(fmt.Sprintf("%s skipped due to: %v", name, err)))
	default:
		fmt.Fprintln(c.errOut, failStyle.Render(fmt.Sprintf("%s failed with: %v", name, err)))
	}
}

// Result is one recorded Print call.
type Result struct {
	Cmd domain.Command
	Msg string
	Err error
}

// Recorder is a Sink that captures results for tests.
type Recorder struct {
	Results []Result
}

func (r *Recorder) Print(cmd domain.Command, msg string, err error) {
	r.Results = append(r.Results, Result{Cmd: cmd, Msg: msg, Err: err})
}

package domain

// Command is one user instruction to the tracker. The concrete types below
// are the only variants; consumers dispatch with a type switch whose default
// case panics, so an unhandled variant fails loudly instead of silently.
type Command interface {
	isCommand()
}

// Status asks whether a session is currently running.
type Status struct{}

// Start opens a new session at the current time.
type Start struct{}

// Stop closes the currently open session at the current time.
type Stop struct{}

// Report asks for total hours worked over the given period.
type Report struct {
	Kind ReportKind
}

// Field names the timestamp a correction overwrites.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
)

func (f Field) String() string {
	switch f {
	case FieldStart:
		return "start"
	case FieldEnd:
		return "end"
	default:
		panic("unknown field")
	}
}

// Correct overwrites the time-of-day of one timestamp of a recent session.
// Position counts back from the most recent session: 0 is the newest. The
// session's original date is preserved; only hour and minute change.
type Correct struct {
	Position int
	Field    Field
	Hour     int
	Minute   int
}

// SQL hands the database file to an external sqlite3 shell.
type SQL struct{}

// CopyLast copies the last report line to the clipboard. Handled by the
// front end, never by the controller.
type CopyLast struct{}

// Quit ends the interactive loop. Handled by the front end.
type Quit struct{}

func (Status) isCommand()   {}
func (Start) isCommand()    {}
func (Stop) isCommand()     {}
func (Report) isCommand()   {}
func (Correct) isCommand()  {}
func (SQL) isCommand()      {}
func (CopyLast) isCommand() {}
func (Quit) isCommand()     {}

// Name returns the display name of a command for result rendering.
func Name(c Command) string {
	switch c.(type) {
	case Status:
		return "Status"
	case Start:
		return "Start"
	case Stop:
		return "Stop"
	case Report:
		return "Report"
	case Correct:
		return "Correct"
	case SQL:
		return "Sql"
	case CopyLast:
		return "Copy"
	case Quit:
		return "Quit"
	default:
		panic("unhandled command")
	}
}

// Package cli owns the one-shot argument surface and the result sink. The
// interactive menu lives in internal/tui; both produce the same Command
// values for the controller.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/naveenspark/worktime/pkg/domain"
)

// Parsed is one command-line invocation.
type Parsed struct {
	Cmd domain.Command
	// Copy puts a successful report line on the clipboard (report --copy).
	Copy bool
}

// Parse maps arguments (without the program name) to a command.
//
//	status | start | stop
//	report [day|week|month] [--copy]
//	correct <position> <start|end> <HH:MM>
//	sql
func Parse(args []string) (Parsed, error) {
	if len(args) == 0 {
		return Parsed{}, fmt.Errorf("no command given")
	}
	switch args[0] {
	case "status":
		return Parsed{Cmd: domain.Status{}}, nil
	case "start":
		return Parsed{Cmd: domain.Start{}}, nil
	case "stop":
		return Parsed{Cmd: domain.Stop{}}, nil
	case "report":
		return parseReport(args[1:])
	case "correct":
		return parseCorrect(args[1:])
	case "sql":
		return Parsed{Cmd: domain.SQL{}}, nil
	default:
		return Parsed{}, fmt.Errorf("unknown command %q", args[0])
	}
}

func parseReport(args []string) (Parsed, error) {
	var p Parsed
	kind := domain.ReportDay
	for _, a := range args {
		switch a {
		case "day":
			kind = domain.ReportDay
		case "week":
			kind = domain.ReportWeek
		case "month":
			kind = domain.ReportMonth
		case "--copy":
			p.Copy = true
		default:
			return Parsed{}, fmt.Errorf("unknown report argument %q", a)
		}
	}
	p.Cmd = domain.Report{Kind: kind}
	return p, nil
}

func parseCorrect(args []string) (Parsed, error) {
	if len(args) != 3 {
		return Parsed{}, fmt.Errorf("usage: correct <position> <start|end> <HH:MM>")
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 0 {
		return Parsed{}, fmt.Errorf("position must be a non-negative number, got %q", args[0])
	}
	var field domain.Field
	switch args[1] {
	case "start":
		field = domain.FieldStart
	case "end":
		field = domain.FieldEnd
	default:
		return Parsed{}, fmt.Errorf("field must be start or end, got %q", args[1])
	}
	hour, minute, err := parseClock(args[2])
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Cmd: domain.Correct{Position: pos, Field: field, Hour: hour, Minute: minute}}, nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time must be HH:MM, got %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour must be 0-23, got %q", parts[0])
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute must be 0-59, got %q", parts[1])
	}
	return hour, minute, nil
}

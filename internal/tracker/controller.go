// Package tracker drives the session lifecycle: it executes commands against
// the store and clock and turns outcomes into messages or categorized errors.
package tracker

import (
	"fmt"
	"time"

	"github.com/naveenspark/worktime/internal/store"
	"github.com/naveenspark/worktime/pkg/clock"
	"github.com/naveenspark/worktime/pkg/domain"
)

const clockFormat = "15:04:05"

// Controller executes commands. The Idle/Running state is never stored; it
// is derived from the last session on every command.
type Controller struct {
	store *store.Store
	clock clock.Clock
	shell func() error // launches the external sql shell
}

// New builds a Controller. shell may be nil if SQL is never dispatched.
func New(st *store.Store, clk clock.Clock, shell func() error) *Controller {
	return &Controller{store: st, clock: clk, shell: shell}
}

// Execute runs one command and returns its success message. Errors keep
// their category: a *domain.LogicError is a user refusal, a *store.StoreError
// a persistence failure. Quit and CopyLast belong to the front end and are
// never passed here; an unhandled variant panics.
func (c *Controller) Execute(cmd domain.Command) (string, error) {
	switch cmd := cmd.(type) {
	case domain.Status:
		return c.status()
	case domain.Start:
		return c.start()
	case domain.Stop:
		return c.stop()
	case domain.Report:
		return c.report(cmd.Kind)
	case domain.Correct:
		return c.correct(cmd)
	case domain.SQL:
		return c.sql()
	default:
		panic(fmt.Sprintf("unhandled command %T", cmd))
	}
}

func (c *Controller) status() (string, error) {
	last, err := c.store.LastSession()
	if err != nil {
		return "", err
	}
	if last == nil {
		return "", domain.ErrNoSessions
	}
	if last.Open() {
		return fmt.Sprintf("Running since %s", last.Start.Format(clockFormat)), nil
	}
	return "Not running", nil
}

func (c *Controller) start() (string, error) {
	now, err := c.store.InsertStart(c.clock.Now())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Started at %s", now.Format(clockFormat)), nil
}

func (c *Controller) stop() (string, error) {
	last, err := c.store.LastSession()
	if err != nil {
		return "", err
	}
	if last == nil {
		return "", domain.ErrNoSessions
	}
	if !last.Open() {
		return "", domain.ErrNotRunning
	}
	now, err := c.store.InsertStop(last.ID, c.clock.Now())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Stopped at %s", now.Format(clockFormat)), nil
}

func (c *Controller) report(kind domain.ReportKind) (string, error) {
	now := c.clock.Now()
	ref := kind.ReferenceDate(now)
	sessions, err := c.store.Since(ref)
	if err != nil {
		return "", err
	}
	total := domain.Aggregate(sessions, now)
	return fmt.Sprintf("Worked %s since %s", domain.FormatHours(total), ref.Format("2006-01-02")), nil
}

// correct resolves the position (0 = most recent) to a concrete session and
// overwrites one timestamp, keeping the original date and replacing the
// time-of-day with hour:minute:00. The store does not validate the result;
// an inverted interval is caught by the next startup audit.
func (c *Controller) correct(cmd domain.Correct) (string, error) {
	sessions, err := c.store.LastN(cmd.Position + 1)
	if err != nil {
		return "", err
	}
	if cmd.Position >= len(sessions) {
		return "", domain.Logic(fmt.Sprintf("No session at position %d", cmd.Position))
	}
	target := sessions[cmd.Position]

	// An open session has no end date to preserve; fall back to its start date.
	base := target.Start
	if cmd.Field == domain.FieldEnd && target.End != nil {
		base = *target.End
	}
	corrected := time.Date(base.Year(), base.Month(), base.Day(),
		cmd.Hour, cmd.Minute, 0, 0, base.Location())

	switch cmd.Field {
	case domain.FieldStart:
		err = c.store.UpdateStartTime(target.ID, corrected)
	case domain.FieldEnd:
		err = c.store.UpdateEndTime(target.ID, corrected)
	default:
		panic("unknown field")
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Corrected %s of session %d to %s",
		cmd.Field, target.ID, corrected.Format(clockFormat)), nil
}

func (c *Controller) sql() (string, error) {
	if err := c.shell(); err != nil {
		return "", fmt.Errorf("sql shell: %w", err)
	}
	return "sqlite3 exited", nil
}

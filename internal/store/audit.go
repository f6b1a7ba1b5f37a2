package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/naveenspark/worktime/pkg/domain"
)

// runAudit is the background consistency audit launched by Open. It only
// reads. A read failure is logged and the audit abandoned; an invariant
// violation is corruption and goes through the fatal hook, because silent
// repair could hide data loss.
func (s *Store) runAudit() {
	defer s.audit.Done()

	runID := uuid.New()
	s.log.Debug("consistency audit started", "run", runID)

	sessions, err := s.allByStart()
	if err != nil {
		s.log.Warn("consistency audit aborted", "run", runID, "err", err)
		return
	}
	if err := Check(sessions, s.clock.Now()); err != nil {
		s.fatalf("consistency audit %s: %v", runID, err)
		return
	}
	s.log.Debug("consistency audit passed", "run", runID, "sessions", len(sessions))
}

// Check verifies the session invariants over the full set: every closed
// session has end >= start, sessions ordered by start time do not overlap,
// and at most one session is open. Open sessions use now as their effective
// end for the overlap check only; nothing is ever written. Ordering is by
// start, not id, since corrections can reorder wall-clock times independent
// of creation order. Returns the first violation found, nil if clean.
func Check(sessions []domain.Session, now time.Time) error {
	sorted := make([]domain.Session, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	open := 0
	var prev *domain.Session
	for i := range sorted {
		sess := &sorted[i]
		if sess.Open() {
			open++
		}
		end := sess.EffectiveEnd(now)
		if !sess.Open() && end.Before(sess.Start) {
			return fmt.Errorf("session %d: end %s before start %s",
				sess.ID, end.Format(timeFormat), sess.Start.Format(timeFormat))
		}
		if prev != nil {
			prevEnd := prev.EffectiveEnd(now)
			if sess.Start.Before(prevEnd) {
				return fmt.Errorf("session %d starts %s before session %d ends %s",
					sess.ID, sess.Start.Format(timeFormat),
					prev.ID, prevEnd.Format(timeFormat))
			}
		}
		prev = sess
	}
	if open > 1 {
		return fmt.Errorf("%d open sessions, at most one allowed", open)
	}
	return nil
}

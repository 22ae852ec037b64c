package scheduler

import "github.com/jakechorley/carehome-rota/pkg/core/model"

// effectiveMaxConsecutive returns the consecutive-workday limit for a staff
// member: an explicit override wins, full-timers with night capability get
// the short night-worker limit, everyone else uses the global setting.
func effectiveMaxConsecutive(s *model.Staff, settings Settings) int {
	if s.MaxConsecutiveOverride > 0 {
		return s.MaxConsecutiveOverride
	}
	if s.CanNight() {
		return NightWorkerMaxConsecutive
	}
	return settings.MaxConsecutive
}

// backwardRun counts the workdays in the run ending at day-1.
// Off and NightOff break the run.
func backwardRun(row []ShiftType, day int) int {
	count := 0
	for d := day - 1; d >= 1 && row[d].IsWork(); d-- {
		count++
	}
	return count
}

// forwardRun counts the workdays in the run starting at from
func forwardRun(row []ShiftType, from, days int) int {
	count := 0
	for d := from; d <= days && row[d].IsWork(); d++ {
		count++
	}
	return count
}

// canWorkOn decides whether assigning a day shift at day would keep the
// staff within their consecutive limit. usesPlusOne is true when the
// assignment is only legal by spending one of the staff's +1 overruns; the
// caller must charge the budget when it actually commits the shift.
func (r *run) canWorkOn(s *model.Staff, day int) (ok, usesPlusOne bool) {
	row := r.cells[s.ID]
	if row[day] != Off {
		return false, false
	}
	max := effectiveMaxConsecutive(s, r.settings)
	total := backwardRun(row, day) + 1 + forwardRun(row, day+1, r.days)
	if total <= max {
		return true, false
	}
	if total == max+1 && s.AllowConsecutivePlusOne && r.plusOneUsed[s.ID] < PlusOneBudget {
		return true, true
	}
	return false, false
}

// canAssignNight decides whether the staff may take the night shift on day.
// The whole three-cell window day..day+2 must still be blank: day+1 will be
// forced to NightOff, and day+2 is left free for the operator even though
// nothing is written there.
func (r *run) canAssignNight(s *model.Staff, day int) bool {
	if s.IsPartTime() || s.Night == model.NightNone {
		return false
	}
	if s.Night == model.NightWeekday && isFriSatSun(r.year, r.month, day) {
		return false
	}
	row := r.cells[s.ID]
	for d := day; d <= day+2 && d <= r.days; d++ {
		if row[d] != Off {
			return false
		}
	}
	max := effectiveMaxConsecutive(s, r.settings)
	past := backwardRun(row, day)
	if past+1 > max {
		return false
	}
	// NightOff at day+1 breaks the run, so the forward leg starts at day+2
	if past+1+forwardRun(row, day+2, r.days) > max {
		return false
	}
	return true
}

// availableForWork gates the day-shift phases: the cell must be blank, the
// day not requested off, the consecutive limit respected, and the staff
// still above their off-day floor.
func (r *run) availableForWork(s *model.Staff, day int) (ok, usesPlusOne bool) {
	if r.requested(s.ID, day) {
		return false, false
	}
	if r.offDays(s.ID) <= s.MonthlyOffTarget {
		return false, false
	}
	return r.canWorkOn(s, day)
}

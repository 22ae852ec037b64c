package scheduler

import "github.com/jakechorley/carehome-rota/pkg/core/model"

// Fixed shift intervals as minutes since midnight, half-open [start, end).
// Night spills past midnight; its morning tail is modelled by NightOff so
// that a single day's cells stay self-contained.
const (
	earlyStart    = 420  // 07:00
	earlyEnd      = 960  // 16:00
	lateStart     = 570  // 09:30
	lateEnd       = 1110 // 18:30
	nightStart    = 1020 // 17:00
	nightEnd      = 1440
	nightOffStart = 0
	nightOffEnd   = 540 // 09:00
)

// shiftInterval returns the presence interval for a shift. Part shifts use
// the owning staff's own start/end times. The second return is false for
// Off, which has no interval.
func shiftInterval(s *model.Staff, shift ShiftType) (start, end int, ok bool) {
	switch shift {
	case Early:
		return earlyStart, earlyEnd, true
	case Late:
		return lateStart, lateEnd, true
	case Overtime:
		return earlyStart, lateEnd, true
	case Night:
		return nightStart, nightEnd, true
	case NightOff:
		return nightOffStart, nightOffEnd, true
	case Part:
		start, end = s.Minutes()
		return start, end, true
	}
	return 0, 0, false
}

// presentAt reports whether a staff member working the given shift is
// present at the given minute of the day
func presentAt(s *model.Staff, shift ShiftType, minute int) bool {
	start, end, ok := shiftInterval(s, shift)
	if !ok {
		return false
	}
	return minute >= start && minute < end
}

// countAt sums presence across the whole roster at one minute of one day.
// This is the single source of truth for coverage; every phase, warning
// and rescue goes through it.
func (r *run) countAt(day, minute int) int {
	count := 0
	for i := range r.staff {
		s := &r.staff[i]
		if presentAt(s, r.cells[s.ID][day], minute) {
			count++
		}
	}
	return count
}

// coverage returns the three checkpoint headcounts for a day
func (r *run) coverage(day int) (morning, noon, evening int) {
	return r.countAt(day, MorningMinute), r.countAt(day, NoonMinute), r.countAt(day, EveningMinute)
}

package scheduler

import (
	"fmt"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

// EditWarnings previews the consequences of an operator editing one cell to
// newShift. The change is applied to a copy of the staff's row and a subset
// of the validator's checks runs against it: consecutive run, night
// eligibility and day of week, overtime eligibility, and the part-timer
// early/late-only restrictions. Nothing is committed; the messages are the
// whole result.
func EditWarnings(staff model.Staff, assignments Assignments, day int, newShift ShiftType, year, month int, settings Settings) []string {
	s := model.Normalize(staff)
	settings = settings.WithDefaults()
	days := daysIn(year, month)
	warnings := []string{}

	if day < 1 || day > days {
		return warnings
	}

	// Probe a copy of the row, never the live table
	row := make(map[int]ShiftType, days)
	for d := 1; d <= days; d++ {
		row[d] = assignments[s.ID][d]
	}
	row[day] = newShift

	if newShift.IsWork() {
		limit := effectiveMaxConsecutive(&s, settings)
		if s.AllowConsecutivePlusOne {
			limit++
		}
		runLen := 1
		for d := day - 1; d >= 1 && row[d].IsWork(); d-- {
			runLen++
		}
		for d := day + 1; d <= days && row[d].IsWork(); d++ {
			runLen++
		}
		if runLen > limit {
			warnings = append(warnings, fmt.Sprintf(
				"%s: %d consecutive workdays around day %d exceed the limit of %d",
				s.Name, runLen, day, limit))
		}
	}

	switch newShift {
	case Night:
		if s.IsPartTime() || s.Night == model.NightNone {
			warnings = append(warnings, fmt.Sprintf(
				"%s: not eligible for the night shift on day %d", s.Name, day))
		} else if s.Night == model.NightWeekday && isFriSatSun(year, month, day) {
			warnings = append(warnings, fmt.Sprintf(
				"%s: night shift on day %d falls on a Friday, Saturday or Sunday", s.Name, day))
		}
	case Overtime:
		if s.IsPartTime() || !s.CanOvertime {
			warnings = append(warnings, fmt.Sprintf(
				"%s: not eligible for overtime on day %d", s.Name, day))
		}
	}

	if s.IsPartTime() {
		switch {
		case s.LateOnly && (newShift == Early || newShift == Overtime):
			warnings = append(warnings, fmt.Sprintf(
				"%s: early-side shift on day %d conflicts with the late-only restriction", s.Name, day))
		case s.EarlyOnly && (newShift == Late || newShift == Overtime):
			warnings = append(warnings, fmt.Sprintf(
				"%s: late-side shift on day %d conflicts with the early-only restriction", s.Name, day))
		}
	}

	return warnings
}

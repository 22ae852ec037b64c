package scheduler

import (
	"fmt"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

// Validate re-examines a completed assignment table and returns a warning
// for every hard rule it violates. It never mutates the table and never
// fails: an empty slice means a clean schedule.
func Validate(staff []model.Staff, assignments Assignments, year, month int, settings Settings) []string {
	settings = settings.WithDefaults()
	days := daysIn(year, month)
	warnings := []string{}

	for _, s := range model.NormalizeAll(staff) {
		row := assignments[s.ID]
		if row == nil {
			continue
		}
		warnings = append(warnings, validateRow(&s, row, year, month, days, settings)...)
	}
	return warnings
}

func validateRow(s *model.Staff, row map[int]ShiftType, year, month, days int, settings Settings) []string {
	var warnings []string

	// Consecutive runs, including the +1 slack for consenting staff
	limit := effectiveMaxConsecutive(s, settings)
	if s.AllowConsecutivePlusOne {
		limit++
	}
	runStart := 0
	runLen := 0
	for d := 1; d <= days+1; d++ {
		if d <= days && row[d].IsWork() {
			if runLen == 0 {
				runStart = d
			}
			runLen++
			continue
		}
		if runLen > limit {
			warnings = append(warnings, fmt.Sprintf(
				"%s: %d consecutive workdays from day %d exceed the limit of %d",
				s.Name, runLen, runStart, limit))
		}
		runLen = 0
	}

	for d := 1; d <= days; d++ {
		switch row[d] {
		case Night:
			if s.IsPartTime() || s.Night == model.NightNone {
				warnings = append(warnings, fmt.Sprintf(
					"%s: not eligible for the night shift on day %d", s.Name, d))
			} else if s.Night == model.NightWeekday && isFriSatSun(year, month, d) {
				warnings = append(warnings, fmt.Sprintf(
					"%s: night shift on day %d falls on a Friday, Saturday or Sunday", s.Name, d))
			}
			if d < days && row[d+1] != NightOff {
				warnings = append(warnings, fmt.Sprintf(
					"%s: night shift on day %d has no night-off the following day", s.Name, d))
			}
		case Overtime:
			if s.IsPartTime() || !s.CanOvertime {
				warnings = append(warnings, fmt.Sprintf(
					"%s: not eligible for overtime on day %d", s.Name, d))
			}
		}

		if s.IsPartTime() {
			switch {
			case s.LateOnly && (row[d] == Early || row[d] == Overtime):
				warnings = append(warnings, fmt.Sprintf(
					"%s: early-side shift on day %d conflicts with the late-only restriction", s.Name, d))
			case s.EarlyOnly && (row[d] == Late || row[d] == Overtime):
				warnings = append(warnings, fmt.Sprintf(
					"%s: late-side shift on day %d conflicts with the early-only restriction", s.Name, d))
			}
		}
	}

	return warnings
}

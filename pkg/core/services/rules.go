package services

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/carehome-rota/internal/config"
)

// ExpandStaffRules turns the configured recurring unavailability rules into
// the month's requested-off days per staff id. Rules that fail to parse are
// skipped; config validation already rejects them at load time.
func ExpandStaffRules(rules []config.StaffRule, year, month int) map[string][]int {
	requests := make(map[string][]int)

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	for _, rule := range rules {
		option, err := rrule.StrToROption(rule.RRule)
		if err != nil {
			continue
		}
		// Anchor the recurrence at the month start so rules written
		// without a DTSTART still enumerate this month
		if option.Dtstart.IsZero() {
			option.Dtstart = monthStart
		}
		r, err := rrule.NewRRule(*option)
		if err != nil {
			continue
		}

		for _, occurrence := range r.Between(monthStart, monthEnd, true) {
			requests[rule.StaffID] = append(requests[rule.StaffID], occurrence.Day())
		}
	}

	return requests
}

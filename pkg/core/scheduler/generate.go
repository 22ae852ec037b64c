package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

// Generate produces the month's assignment table for the given roster.
//
// The table is built from blank by a fixed sequence of greedy phases: night
// shifts first, then part-timers, then full-time day shifts against the
// three coverage checkpoints, then workday top-ups, rescues and balancing.
// Conflicting constraints are never an error: the best-effort schedule is
// returned together with a warning for every rule it fails to satisfy.
//
// requests maps staff id to requested-off days; unknown ids and days
// outside the month are ignored. rng is the single pseudo-random source
// consumed by every shuffle; pass a seeded source for deterministic output,
// or nil for a time-seeded one.
func Generate(staff []model.Staff, year, month int, requests map[string][]int, settings Settings, rng *rand.Rand) *Result {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r := newRun(staff, year, month, requests, settings, rng)

	r.placeNights()        // phase 2
	r.placePartTimers()    // phase 3
	r.equalizePartRest()   // phase 3.5
	r.fillDayShifts()      // phase 4
	r.topUpWorkdays()      // phase 5
	r.rescueCoverage()     // phase 5.5
	r.balanceEarlyLate()   // phase 5.8
	r.warnOffShortfalls()  // phase 6

	// Phase 7: final validation over the completed table
	res := r.result()
	res.Warnings = append(res.Warnings, Validate(staff, res.Assignments, year, month, settings)...)
	return res
}

// placeNights assigns the required night headcount for every day, forcing
// the following day to NightOff. Day+2 is only checked blank, never
// written; the trailing-rest decision stays with the later phases.
func (r *run) placeNights() {
	for day := 1; day <= r.days; day++ {
		required := r.settings.NightRequired
		if isSunday(r.year, r.month, day) {
			required = r.settings.SundayNightRequired
		}
		for i := 0; i < required; i++ {
			var cands []*model.Staff
			for j := range r.staff {
				s := &r.staff[j]
				if !r.canAssignNight(s, day) {
					continue
				}
				// Never turn a requested day off into a night or the
				// forced morning-after rest
				if r.requested(s.ID, day) || (day+1 <= r.days && r.requested(s.ID, day+1)) {
					continue
				}
				cands = append(cands, s)
			}
			picked := r.pickNightStaff(cands)
			if picked == nil {
				r.warn(fmt.Sprintf("day %d: no staff available for the night shift", day))
				break
			}
			r.cells[picked.ID][day] = Night
			if day+1 <= r.days {
				r.cells[picked.ID][day+1] = NightOff
			}
		}
	}
}

// canPlacePart gates a single part-timer placement
func (r *run) canPlacePart(s *model.Staff, day int) (ok, usesPlusOne bool) {
	if r.cell(s.ID, day) != Off || r.requested(s.ID, day) {
		return false, false
	}
	if r.weekWorkdays(s.ID, day) >= s.MaxDaysPerWeek {
		return false, false
	}
	return r.canWorkOn(s, day)
}

// placePartTimers lays out every part-timer's month. Staff on a
// two-day consecutive limit get the rotating work-work-off pattern;
// everyone else gets a random-start greedy walk up to their target.
func (r *run) placePartTimers() {
	for i := range r.staff {
		s := &r.staff[i]
		if !s.IsPartTime() {
			continue
		}
		if effectiveMaxConsecutive(s, r.settings) <= 2 {
			r.placePartPattern(s)
		} else {
			r.placePartGreedy(s)
		}
	}
}

// placePartPattern tries the three offsets of a work-work-off rotation on a
// scratch row and commits the one that yields the most workdays
func (r *run) placePartPattern(s *model.Staff) {
	bestOffset, bestWork := 0, -1
	for offset := 0; offset <= 2; offset++ {
		scratch := make([]ShiftType, len(r.cells[s.ID]))
		copy(scratch, r.cells[s.ID])
		work := r.walkPartPattern(s, scratch, offset)
		if work > bestWork {
			bestOffset, bestWork = offset, work
		}
	}
	r.walkPartPattern(s, r.cells[s.ID], bestOffset)
}

// walkPartPattern places the pattern left to right on row and returns the
// resulting workday count. The same walk is used for trial and commit, so
// committing the winning offset reproduces its trial exactly.
func (r *run) walkPartPattern(s *model.Staff, row []ShiftType, offset int) int {
	max := effectiveMaxConsecutive(s, r.settings)
	for day := 1; day <= r.days; day++ {
		if (day-1+offset)%3 == 2 {
			continue // rest position of the rotation
		}
		if row[day] != Off || r.requested(s.ID, day) {
			continue
		}
		if weekWork(row, r.year, r.month, day, r.days) >= s.MaxDaysPerWeek {
			continue
		}
		if backwardRun(row, day)+1+forwardRun(row, day+1, r.days) > max {
			continue
		}
		row[day] = Part
	}
	work := 0
	for day := 1; day <= r.days; day++ {
		if row[day].IsWork() {
			work++
		}
	}
	return work
}

// weekWork counts workdays in the Mon-Sun week containing day against an
// explicit row (used for scratch rows during pattern trials)
func weekWork(row []ShiftType, year, month, day, days int) int {
	first, last := weekBounds(year, month, day, days)
	count := 0
	for d := first; d <= last; d++ {
		if row[d].IsWork() {
			count++
		}
	}
	return count
}

// placePartGreedy walks the month from a random start day, wrapping, and
// places shifts until the staff reaches their workday target. A reverse
// pass mops up whatever the forward walk could not reach.
func (r *run) placePartGreedy(s *model.Staff) {
	target := r.targetWorkdays(s)
	start := r.rng.Intn(r.days) + 1
	for k := 0; k < r.days && r.workdays(s.ID) < target; k++ {
		day := (start-1+k)%r.days + 1
		if ok, plus := r.canPlacePart(s, day); ok {
			if plus {
				r.plusOneUsed[s.ID]++
			}
			r.cells[s.ID][day] = Part
		}
	}
	for day := r.days; day >= 1 && r.workdays(s.ID) < target; day-- {
		if ok, plus := r.canPlacePart(s, day); ok {
			if plus {
				r.plusOneUsed[s.ID]++
			}
			r.cells[s.ID][day] = Part
		}
	}
}

// equalizePartRest stops one part-timer from absorbing the rest burden of
// another: while some part-timer sits above their off-day target, give the
// largest-surplus one another shift, until nothing more can be placed.
func (r *run) equalizePartRest() {
	for iter := 0; iter < 20; iter++ {
		var pick *model.Staff
		surplus := 0
		for i := range r.staff {
			s := &r.staff[i]
			if !s.IsPartTime() {
				continue
			}
			if sp := r.offDays(s.ID) - s.MonthlyOffTarget; sp > surplus {
				pick, surplus = s, sp
			}
		}
		if pick == nil {
			return
		}
		placed := false
		for day := 1; day <= r.days; day++ {
			if ok, plus := r.canPlacePart(pick, day); ok {
				if plus {
					r.plusOneUsed[pick.ID]++
				}
				r.cells[pick.ID][day] = Part
				placed = true
				break
			}
		}
		if !placed {
			return
		}
	}
}

// assignDay commits a day shift, charging the +1 overrun budget when the
// placement needed it
func (r *run) assignDay(s *model.Staff, day int, shift ShiftType) {
	if _, plus := r.canWorkOn(s, day); plus {
		r.plusOneUsed[s.ID]++
	}
	r.cells[s.ID][day] = shift
}

// availableFullTimers returns the full-time staff that may take a fresh
// day shift on day (blank cell, no request, consecutive limit, off floor)
func (r *run) availableFullTimers(day int) []*model.Staff {
	var out []*model.Staff
	for i := range r.staff {
		s := &r.staff[i]
		if !s.IsFullTime() {
			continue
		}
		if ok, _ := r.availableForWork(s, day); ok {
			out = append(out, s)
		}
	}
	return out
}

// fillDayShifts is the main coverage phase: for each day it works the three
// checkpoints up to their floors with strategic overtime, early, late and
// noon fills, overtime upgrades, and finally warnings for whatever is left.
func (r *run) fillDayShifts() {
	for day := 1; day <= r.days; day++ {
		sunday := isSunday(r.year, r.month, day)
		relaxing := sunday && len(r.relaxedSundays) < SundayRelaxBudget
		floorM, floorN := RequiredCoverage, RequiredCoverage
		if relaxing {
			floorM, floorN = SundayRelaxedCoverage, SundayRelaxedCoverage
		}

		m, _, e := r.coverage(day)

		// 1. strategic overtime when both ends of the day are short
		if otWant := min(max(0, floorM-m), max(0, RequiredCoverage-e)); otWant > 0 {
			var cands []*model.Staff
			for _, s := range r.availableFullTimers(day) {
				if s.CanOvertime && r.countShift(s.ID, Overtime) < OvertimeTarget {
					cands = append(cands, s)
				}
			}
			cands = r.sortForOvertime(cands)
			for i := 0; i < otWant && i < len(cands); i++ {
				r.assignDay(cands[i], day, Overtime)
			}
			m, _, e = r.coverage(day)
		}

		// 2. fill the morning with early shifts
		if m < floorM {
			cands := r.availableFullTimers(day)
			r.sortSoft(cands, Early)
			for _, s := range cands {
				if m >= floorM {
					break
				}
				r.assignDay(s, day, Early)
				m++
			}
		}

		// 3. fill the evening with late shifts
		_, _, e = r.coverage(day)
		if e < RequiredCoverage {
			cands := r.availableFullTimers(day)
			r.sortSoft(cands, Late)
			for _, s := range cands {
				if e >= RequiredCoverage {
					break
				}
				r.assignDay(s, day, Late)
				e++
			}
		}

		// 4. fill the noon gap with whichever side the picked staff has less of
		for {
			_, n, _ := r.coverage(day)
			if n >= floorN {
				break
			}
			cands := r.availableFullTimers(day)
			r.sortSoft(cands, Off)
			if len(cands) == 0 {
				break
			}
			s := cands[0]
			shift := Early
			if r.countShift(s.ID, Late) < r.countShift(s.ID, Early) {
				shift = Late
			}
			r.assignDay(s, day, shift)
		}

		// 5. upgrade existing shifts to overtime for a still-short end
		if r.countAt(day, EveningMinute) < RequiredCoverage {
			r.upgradeToOvertime(day, Early, EveningMinute, RequiredCoverage)
		}
		if r.countAt(day, MorningMinute) < floorM {
			r.upgradeToOvertime(day, Late, MorningMinute, floorM)
		}

		// 6. whatever is still short becomes a warning
		m, n, e := r.coverage(day)
		if m < floorM {
			r.warnCoverage(fmt.Sprintf("day %d: morning coverage %d is below the required %d", day, m, floorM))
		}
		if n < floorN {
			r.warnCoverage(fmt.Sprintf("day %d: noon coverage %d is below the required %d", day, n, floorN))
		}
		if e < RequiredCoverage {
			r.warnCoverage(fmt.Sprintf("day %d: evening coverage %d is below the required %d", day, e, RequiredCoverage))
		}

		// A Sunday that ended on the reduced floor consumes one relaxation
		if relaxing && (m == SundayRelaxedCoverage || n == SundayRelaxedCoverage) {
			r.relaxedSundays[day] = true
		}
	}
}

// upgradeToOvertime promotes staff already working from-shifts on day to
// overtime until the checkpoint reaches floor or candidates run out. The
// overtime sort ignores the soft target but keeps the hard cap.
func (r *run) upgradeToOvertime(day int, from ShiftType, minute, floor int) {
	for r.countAt(day, minute) < floor {
		var cands []*model.Staff
		for i := range r.staff {
			s := &r.staff[i]
			if s.IsFullTime() && s.CanOvertime && r.cell(s.ID, day) == from {
				cands = append(cands, s)
			}
		}
		cands = r.sortForOvertime(cands)
		if len(cands) == 0 {
			return
		}
		r.cells[cands[0].ID][day] = Overtime
	}
}

// topUpWorkdays closes each full-timer's workday gap, preferring days where
// the extra shift also repairs a coverage shortfall
func (r *run) topUpWorkdays() {
	for i := range r.staff {
		s := &r.staff[i]
		if !s.IsFullTime() {
			continue
		}
		for r.workGap(s) > 0 {
			type candidate struct {
				day                    int
				shortM, shortN, shortE int
				present                int
			}
			var cands []candidate
			for day := 1; day <= r.days; day++ {
				if ok, _ := r.availableForWork(s, day); !ok {
					continue
				}
				m, n, e := r.coverage(day)
				cands = append(cands, candidate{
					day:     day,
					shortM:  max(0, RequiredCoverage-m),
					shortN:  max(0, RequiredCoverage-n),
					shortE:  max(0, RequiredCoverage-e),
					present: m + n + e,
				})
			}
			if len(cands) == 0 {
				break
			}

			best := cands[0]
			for _, c := range cands[1:] {
				if c.shortM+c.shortN+c.shortE > best.shortM+best.shortN+best.shortE {
					best = c
				}
			}

			if best.shortM+best.shortN+best.shortE == 0 {
				// No shortfall anywhere: spread onto the quietest day
				quiet := cands[0].present
				for _, c := range cands[1:] {
					if c.present < quiet {
						quiet = c.present
					}
				}
				var quietest []candidate
				for _, c := range cands {
					if c.present == quiet {
						quietest = append(quietest, c)
					}
				}
				best = quietest[r.rng.Intn(len(quietest))]
			}

			shift := Early
			switch {
			case best.shortE > 0 && best.shortE >= best.shortM:
				shift = Late
			case best.shortM > 0:
				shift = Early
			default:
				// noon-only shortfall or no shortfall at all
				if r.countShift(s.ID, Late) < r.countShift(s.ID, Early) {
					shift = Late
				}
			}
			r.assignDay(s, best.day, shift)
		}
	}
}

// rescueCoverage makes a final pass over every still-short checkpoint:
// overtime upgrades first, then fresh full-timer shifts, then part-timers
// whose own hours cover the checkpoint. No new warnings are emitted; the
// phase 4 ones already describe the shortfall.
func (r *run) rescueCoverage() {
	for day := 1; day <= r.days; day++ {
		floorM, floorN := RequiredCoverage, RequiredCoverage
		if r.relaxedSundays[day] {
			floorM, floorN = SundayRelaxedCoverage, SundayRelaxedCoverage
		}
		checkpoints := []struct {
			minute, floor int
		}{
			{MorningMinute, floorM},
			{NoonMinute, floorN},
			{EveningMinute, RequiredCoverage},
		}
		for _, cp := range checkpoints {
			if r.countAt(day, cp.minute) >= cp.floor {
				continue
			}

			switch cp.minute {
			case EveningMinute:
				r.upgradeToOvertime(day, Early, cp.minute, cp.floor)
			case MorningMinute:
				r.upgradeToOvertime(day, Late, cp.minute, cp.floor)
			}

			for r.countAt(day, cp.minute) < cp.floor {
				cands := r.availableFullTimers(day)
				r.sortSoft(cands, Off)
				if len(cands) == 0 {
					break
				}
				s := cands[0]
				shift := Early
				switch cp.minute {
				case EveningMinute:
					shift = Late
				case NoonMinute:
					if r.countShift(s.ID, Late) < r.countShift(s.ID, Early) {
						shift = Late
					}
				}
				r.assignDay(s, day, shift)
			}

			// Part-timers may be pulled past their off-day floor here:
			// coverage wins over rest, and phase 6 warns about the debt
			for r.countAt(day, cp.minute) < cp.floor {
				placed := false
				for i := range r.staff {
					s := &r.staff[i]
					if !s.IsPartTime() {
						continue
					}
					start, end := s.Minutes()
					if cp.minute < start || cp.minute >= end {
						continue
					}
					if ok, plus := r.canPlacePart(s, day); ok {
						if plus {
							r.plusOneUsed[s.ID]++
						}
						r.cells[s.ID][day] = Part
						placed = true
						break
					}
				}
				if !placed {
					break
				}
			}
		}
	}
}

// balanceEarlyLate evens out each full-timer's early/late split, swapping
// only where the day's coverage floors survive the swap
func (r *run) balanceEarlyLate() {
	for i := range r.staff {
		s := &r.staff[i]
		if !s.IsFullTime() {
			continue
		}
		diff := r.countShift(s.ID, Early) - r.countShift(s.ID, Late)
		if diff > -3 && diff < 3 {
			continue
		}
		from, to := Early, Late
		if diff < 0 {
			from, to, diff = Late, Early, -diff
		}
		swaps := diff / 2
		for day := 1; day <= r.days && swaps > 0; day++ {
			if r.cell(s.ID, day) != from {
				continue
			}
			r.cells[s.ID][day] = to
			floorM := RequiredCoverage
			if r.relaxedSundays[day] {
				floorM = SundayRelaxedCoverage
			}
			if r.countAt(day, MorningMinute) < floorM || r.countAt(day, EveningMinute) < RequiredCoverage {
				r.cells[s.ID][day] = from // the swap broke a floor, undo it
				continue
			}
			swaps--
		}
	}
}

// warnOffShortfalls emits a warning for each staff that ended the month
// below their off-day target. Ending above target is allowed silently.
func (r *run) warnOffShortfalls() {
	for i := range r.staff {
		s := &r.staff[i]
		if off := r.offDays(s.ID); off < s.MonthlyOffTarget {
			r.warn(fmt.Sprintf("%s: %d days off is below the target of %d", s.Name, off, s.MonthlyOffTarget))
		}
	}
}

package scheduler

import (
	"sort"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

// countShift returns how many cells of the staff's row hold the given shift
func (r *run) countShift(id string, shift ShiftType) int {
	count := 0
	row := r.cells[id]
	for d := 1; d <= r.days; d++ {
		if row[d] == shift {
			count++
		}
	}
	return count
}

// workdays counts cells that are neither Off nor NightOff
func (r *run) workdays(id string) int {
	count := 0
	row := r.cells[id]
	for d := 1; d <= r.days; d++ {
		if row[d].IsWork() {
			count++
		}
	}
	return count
}

// offDays counts Off cells only; NightOff is rest but not an off day
func (r *run) offDays(id string) int {
	return r.countShift(id, Off)
}

// targetWorkdays is the month length minus the off-day target minus the
// NightOff days the staff has accrued
func (r *run) targetWorkdays(s *model.Staff) int {
	return r.days - s.MonthlyOffTarget - r.countShift(s.ID, NightOff)
}

// workGap is how many workdays the staff is still short of target
func (r *run) workGap(s *model.Staff) int {
	return r.targetWorkdays(s) - r.workdays(s.ID)
}

// weekWorkdays counts workdays in the Mon-Sun week containing day
func (r *run) weekWorkdays(id string, day int) int {
	first, last := weekBounds(r.year, r.month, day, r.days)
	count := 0
	row := r.cells[id]
	for d := first; d <= last; d++ {
		if row[d].IsWork() {
			count++
		}
	}
	return count
}

// sortSoft orders candidates for a fresh day-shift assignment: shuffle for
// tie diversity, then staff still short of their workday target first,
// larger gap first. balance, when not Off, adds a final ascending count of
// that shift so Early and Late spread evenly.
func (r *run) sortSoft(cands []*model.Staff, balance ShiftType) {
	shuffle(r.rng, cands)
	gaps := make(map[string]int, len(cands))
	for _, s := range cands {
		gaps[s.ID] = r.workGap(s)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		gi, gj := gaps[cands[i].ID], gaps[cands[j].ID]
		if (gi > 0) != (gj > 0) {
			return gi > 0
		}
		if gi != gj {
			return gi > gj
		}
		if balance != Off {
			return r.countShift(cands[i].ID, balance) < r.countShift(cands[j].ID, balance)
		}
		return false
	})
}

// sortForOvertime filters out staff at the overtime cap and orders the rest
// by fewest overtime shifts, then largest workday gap
func (r *run) sortForOvertime(cands []*model.Staff) []*model.Staff {
	kept := make([]*model.Staff, 0, len(cands))
	for _, s := range cands {
		if r.countShift(s.ID, Overtime) < OvertimeCap {
			kept = append(kept, s)
		}
	}
	shuffle(r.rng, kept)
	sort.SliceStable(kept, func(i, j int) bool {
		oi, oj := r.countShift(kept[i].ID, Overtime), r.countShift(kept[j].ID, Overtime)
		if oi != oj {
			return oi < oj
		}
		return r.workGap(kept[i]) > r.workGap(kept[j])
	})
	return kept
}

// pickNightStaff scores night candidates by fewest night shifts this month,
// then fewest workdays, and picks uniformly among the best tier
func (r *run) pickNightStaff(cands []*model.Staff) *model.Staff {
	if len(cands) == 0 {
		return nil
	}
	type score struct {
		nights, work int
	}
	best := score{nights: -1}
	for _, s := range cands {
		sc := score{r.countShift(s.ID, Night), r.workdays(s.ID)}
		if best.nights < 0 || sc.nights < best.nights ||
			(sc.nights == best.nights && sc.work < best.work) {
			best = sc
		}
	}
	tier := make([]*model.Staff, 0, len(cands))
	for _, s := range cands {
		if r.countShift(s.ID, Night) == best.nights && r.workdays(s.ID) == best.work {
			tier = append(tier, s)
		}
	}
	return tier[r.rng.Intn(len(tier))]
}

package scheduler

import (
	"math/rand"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

// run is the mutable state of one generation. It is owned exclusively by a
// single Generate call; nothing here is shared or retained afterwards.
type run struct {
	staff    []model.Staff
	year     int
	month    int
	days     int
	settings Settings

	// requests holds the requested-off days per staff id
	requests map[string]map[int]bool

	// cells is the assignment table, indexed staff id -> day (1-based).
	// Index 0 of each row is unused.
	cells map[string][]ShiftType

	warnings []string

	// seenCoverage suppresses duplicate coverage-shortfall messages
	seenCoverage map[string]bool

	// plusOneUsed counts, per staff, the runs that used the +1 overrun slack
	plusOneUsed map[string]int

	// relaxedSundays marks days that finished on the reduced Sunday floor
	relaxedSundays map[int]bool

	rng *rand.Rand
}

func newRun(staff []model.Staff, year, month int, requests map[string][]int, settings Settings, rng *rand.Rand) *run {
	r := &run{
		staff:          model.NormalizeAll(staff),
		year:           year,
		month:          month,
		days:           daysIn(year, month),
		settings:       settings.WithDefaults(),
		requests:       make(map[string]map[int]bool),
		cells:          make(map[string][]ShiftType),
		seenCoverage:   make(map[string]bool),
		plusOneUsed:    make(map[string]int),
		relaxedSundays: make(map[int]bool),
		rng:            rng,
	}

	// Phase 0: every cell starts Off
	for _, s := range r.staff {
		r.cells[s.ID] = make([]ShiftType, r.days+1)
	}

	// Phase 1: record requested-off days. Unknown staff ids and
	// out-of-range days are dropped; the blank Off already honors the
	// request, later phases just consult the set.
	for id, days := range requests {
		if _, known := r.cells[id]; !known {
			continue
		}
		set := make(map[int]bool)
		for _, d := range days {
			if d >= 1 && d <= r.days {
				set[d] = true
			}
		}
		if len(set) > 0 {
			r.requests[id] = set
		}
	}

	return r
}

// requested reports whether the staff asked for the day off
func (r *run) requested(id string, day int) bool {
	return r.requests[id][day]
}

// cell returns the current shift at (staff, day)
func (r *run) cell(id string, day int) ShiftType {
	return r.cells[id][day]
}

// warn appends a warning
func (r *run) warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// warnCoverage appends a coverage-shortfall warning unless the identical
// message was already emitted this run
func (r *run) warnCoverage(msg string) {
	if r.seenCoverage[msg] {
		return
	}
	r.seenCoverage[msg] = true
	r.warnings = append(r.warnings, msg)
}

// shuffle permutes a candidate slice in place using the run's PRNG
func shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// result snapshots the table into the caller-owned output shape
func (r *run) result() *Result {
	assignments := make(Assignments, len(r.staff))
	for _, s := range r.staff {
		row := make(map[int]ShiftType, r.days)
		for d := 1; d <= r.days; d++ {
			row[d] = r.cells[s.ID][d]
		}
		assignments[s.ID] = row
	}
	warnings := r.warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &Result{Assignments: assignments, Warnings: warnings}
}

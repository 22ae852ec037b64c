package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

// rowOf builds a full month row with every listed day set and the rest Off
func rowOf(days int, set map[int]ShiftType) map[int]ShiftType {
	row := make(map[int]ShiftType, days)
	for d := 1; d <= days; d++ {
		row[d] = Off
	}
	for d, s := range set {
		row[d] = s
	}
	return row
}

func TestValidate_CleanSchedule(t *testing.T) {
	staff := []model.Staff{{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightAll}}
	assignments := Assignments{
		"a": rowOf(30, map[int]ShiftType{3: Night, 4: NightOff, 6: Early, 7: Late}),
	}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestValidate_ConsecutiveOverrun(t *testing.T) {
	staff := []model.Staff{{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightNone}}
	set := map[int]ShiftType{}
	for d := 10; d <= 16; d++ {
		set[d] = Early // 7 straight days against a limit of 5
	}
	assignments := Assignments{"a": rowOf(30, set)}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Aoki")
	assert.Contains(t, warnings[0], "7 consecutive workdays from day 10")
}

func TestValidate_PlusOneRaisesLimit(t *testing.T) {
	staff := []model.Staff{{
		ID: "a", Name: "Aoki", Kind: model.KindFull,
		Night: model.NightNone, AllowConsecutivePlusOne: true,
	}}
	set := map[int]ShiftType{}
	for d := 10; d <= 15; d++ {
		set[d] = Early // 6 days: legal only because of the +1 slack
	}
	assignments := Assignments{"a": rowOf(30, set)}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestValidate_NightViolations(t *testing.T) {
	staff := []model.Staff{
		{ID: "part", Name: "Paato", Kind: model.KindPart},
		{ID: "none", Name: "Nomura", Kind: model.KindFull, Night: model.NightNone},
		{ID: "wk", Name: "Wada", Kind: model.KindFull, Night: model.NightWeekday},
		{ID: "bare", Name: "Baba", Kind: model.KindFull, Night: model.NightAll},
	}
	assignments := Assignments{
		"part": rowOf(30, map[int]ShiftType{2: Night, 3: NightOff}),
		"none": rowOf(30, map[int]ShiftType{2: Night, 3: NightOff}),
		// 2025-04-04 is a Friday
		"wk": rowOf(30, map[int]ShiftType{4: Night, 5: NightOff}),
		// night with no night-off after it
		"bare": rowOf(30, map[int]ShiftType{10: Night}),
	}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})

	assert.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "Paato: not eligible for the night shift on day 2")
	assert.Contains(t, warnings[1], "Nomura: not eligible for the night shift on day 2")
	assert.Contains(t, warnings[2], "Wada: night shift on day 4 falls on a Friday, Saturday or Sunday")
	assert.Contains(t, warnings[3], "Baba: night shift on day 10 has no night-off the following day")
}

func TestValidate_NightOnLastDayNeedsNoPairing(t *testing.T) {
	staff := []model.Staff{{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightAll}}
	assignments := Assignments{"a": rowOf(30, map[int]ShiftType{30: Night})}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestValidate_OvertimeViolations(t *testing.T) {
	staff := []model.Staff{
		{ID: "no-ot", Name: "Ono", Kind: model.KindFull, CanOvertime: false},
		{ID: "part", Name: "Paato", Kind: model.KindPart},
	}
	assignments := Assignments{
		"no-ot": rowOf(30, map[int]ShiftType{5: Overtime}),
		"part":  rowOf(30, map[int]ShiftType{6: Overtime}),
	}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})

	assert.Contains(t, warnings[0], "Ono: not eligible for overtime on day 5")
	// The part-timer trips only the overtime check: having no side
	// restriction, nothing else fires
	assert.Contains(t, warnings[1], "Paato: not eligible for overtime on day 6")
}

func TestValidate_SideRestrictions(t *testing.T) {
	staff := []model.Staff{
		{ID: "late", Name: "Raito", Kind: model.KindPart, LateOnly: true},
		{ID: "early", Name: "Aarii", Kind: model.KindPart, EarlyOnly: true},
	}
	assignments := Assignments{
		"late":  rowOf(30, map[int]ShiftType{3: Early}),
		"early": rowOf(30, map[int]ShiftType{4: Late}),
	}

	warnings := Validate(staff, assignments, 2025, 4, Settings{})

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "Raito: early-side shift on day 3 conflicts with the late-only restriction")
	assert.Contains(t, warnings[1], "Aarii: late-side shift on day 4 conflicts with the early-only restriction")
}

func TestValidate_MissingRowSkipped(t *testing.T) {
	staff := []model.Staff{{ID: "a", Name: "Aoki", Kind: model.KindFull}}
	warnings := Validate(staff, Assignments{}, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

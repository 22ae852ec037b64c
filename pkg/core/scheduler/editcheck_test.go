package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

func TestEditWarnings_NoIssues(t *testing.T) {
	s := model.Staff{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightNone}
	assignments := Assignments{"a": rowOf(30, nil)}

	warnings := EditWarnings(s, assignments, 10, Early, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestEditWarnings_ConsecutiveOverrun(t *testing.T) {
	s := model.Staff{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightNone}
	set := map[int]ShiftType{}
	for d := 5; d <= 9; d++ {
		set[d] = Early
	}
	set[11] = Early
	assignments := Assignments{"a": rowOf(30, set)}

	// Filling day 10 bridges runs of 5 and 1 into a run of 7
	warnings := EditWarnings(s, assignments, 10, Late, 2025, 4, Settings{})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "7 consecutive workdays around day 10")
}

func TestEditWarnings_DoesNotTouchTheTable(t *testing.T) {
	s := model.Staff{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightNone}
	assignments := Assignments{"a": rowOf(30, nil)}

	EditWarnings(s, assignments, 10, Early, 2025, 4, Settings{})
	assert.Equal(t, Off, assignments["a"][10], "the probe must run on a copy")
}

func TestEditWarnings_NightChecks(t *testing.T) {
	none := model.Staff{ID: "n", Name: "Nomura", Kind: model.KindFull, Night: model.NightNone}
	assignments := Assignments{"n": rowOf(30, nil)}

	warnings := EditWarnings(none, assignments, 2, Night, 2025, 4, Settings{})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not eligible for the night shift on day 2")

	wk := model.Staff{ID: "w", Name: "Wada", Kind: model.KindFull, Night: model.NightWeekday}
	assignments = Assignments{"w": rowOf(30, nil)}

	// 2025-04-05 is a Saturday
	warnings = EditWarnings(wk, assignments, 5, Night, 2025, 4, Settings{})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "falls on a Friday, Saturday or Sunday")

	warnings = EditWarnings(wk, assignments, 2, Night, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestEditWarnings_OvertimeAndSides(t *testing.T) {
	part := model.Staff{ID: "p", Name: "Paato", Kind: model.KindPart, LateOnly: true}
	assignments := Assignments{"p": rowOf(30, nil)}

	warnings := EditWarnings(part, assignments, 8, Overtime, 2025, 4, Settings{})
	assert.Len(t, warnings, 2, "overtime on a late-only part trips both checks")

	warnings = EditWarnings(part, assignments, 8, Early, 2025, 4, Settings{})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "late-only restriction")

	warnings = EditWarnings(part, assignments, 8, Late, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestEditWarnings_OffNeverWarnsConsecutive(t *testing.T) {
	s := model.Staff{ID: "a", Name: "Aoki", Kind: model.KindFull, Night: model.NightNone}
	set := map[int]ShiftType{}
	for d := 1; d <= 12; d++ {
		set[d] = Early
	}
	assignments := Assignments{"a": rowOf(30, set)}

	// Setting a cell back to Off can only shorten runs
	warnings := EditWarnings(s, assignments, 6, Off, 2025, 4, Settings{})
	assert.Empty(t, warnings)
}

func TestEditWarnings_OutOfRangeDayIgnored(t *testing.T) {
	s := model.Staff{ID: "a", Name: "Aoki", Kind: model.KindFull}
	assignments := Assignments{"a": rowOf(30, nil)}

	assert.Empty(t, EditWarnings(s, assignments, 0, Early, 2025, 4, Settings{}))
	assert.Empty(t, EditWarnings(s, assignments, 31, Early, 2025, 4, Settings{}))
}

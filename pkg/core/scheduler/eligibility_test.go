package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

func testRun(staff []model.Staff, year, month int) *run {
	return newRun(staff, year, month, nil, Settings{}, rand.New(rand.NewSource(42)))
}

func TestEffectiveMaxConsecutive(t *testing.T) {
	settings := DefaultSettings()

	override := model.Staff{Kind: model.KindFull, Night: model.NightAll, MaxConsecutiveOverride: 4}
	assert.Equal(t, 4, effectiveMaxConsecutive(&override, settings), "override wins")

	nightWorker := model.Staff{Kind: model.KindFull, Night: model.NightAll}
	assert.Equal(t, NightWorkerMaxConsecutive, effectiveMaxConsecutive(&nightWorker, settings))

	dayWorker := model.Staff{Kind: model.KindFull, Night: model.NightNone}
	assert.Equal(t, 5, effectiveMaxConsecutive(&dayWorker, settings), "global default")

	part := model.Staff{Kind: model.KindPart, Night: model.NightAll}
	assert.Equal(t, 5, effectiveMaxConsecutive(&part, settings), "part-timers use the global default")
}

func TestBackwardForwardRun(t *testing.T) {
	row := make([]ShiftType, 11)
	row[2], row[3] = Early, Late
	row[5] = Night
	row[6] = NightOff
	row[7], row[8] = Early, Early

	assert.Equal(t, 2, backwardRun(row, 4), "run of days 2-3 ends at day 3")
	assert.Equal(t, 0, backwardRun(row, 2), "day 1 is off")
	assert.Equal(t, 0, backwardRun(row, 7), "night-off at day 6 breaks the run")
	assert.Equal(t, 2, forwardRun(row, 7, 10))
	assert.Equal(t, 0, forwardRun(row, 6, 10), "night-off is not a workday")
	assert.Equal(t, 1, forwardRun(row, 5, 10), "night is a workday, night-off stops it")
}

func TestCanWorkOn_RespectsLimit(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, Night: model.NightNone}
	r := testRun([]model.Staff{s}, 2025, 4)

	// Work days 1-5; day 6 would make a run of 6 against a limit of 5
	for d := 1; d <= 5; d++ {
		r.cells["a"][d] = Early
	}
	ok, _ := r.canWorkOn(&r.staff[0], 6)
	assert.False(t, ok)

	ok, plus := r.canWorkOn(&r.staff[0], 7)
	assert.True(t, ok)
	assert.False(t, plus)
}

func TestCanWorkOn_BridgingRunsCounted(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull}
	r := testRun([]model.Staff{s}, 2025, 4)

	// 3 workdays behind and 2 ahead: placing day 4 makes a run of 6
	for d := 1; d <= 3; d++ {
		r.cells["a"][d] = Early
	}
	r.cells["a"][5] = Late
	r.cells["a"][6] = Late

	ok, _ := r.canWorkOn(&r.staff[0], 4)
	assert.False(t, ok, "bridging two runs must count both sides")
}

func TestCanWorkOn_PlusOneBudget(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, AllowConsecutivePlusOne: true}
	r := testRun([]model.Staff{s}, 2025, 4)

	for d := 1; d <= 5; d++ {
		r.cells["a"][d] = Early
	}

	// Limit 5, total would be 6: allowed only via the +1 slack
	ok, plus := r.canWorkOn(&r.staff[0], 6)
	assert.True(t, ok)
	assert.True(t, plus)

	// Exhaust the budget; the same placement is now rejected
	r.plusOneUsed["a"] = PlusOneBudget
	ok, _ = r.canWorkOn(&r.staff[0], 6)
	assert.False(t, ok)
}

func TestCanWorkOn_NeverTwoOverLimit(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, AllowConsecutivePlusOne: true}
	r := testRun([]model.Staff{s}, 2025, 4)

	for d := 1; d <= 6; d++ {
		r.cells["a"][d] = Early
	}

	// A run of 7 exceeds even the +1 slack
	ok, _ := r.canWorkOn(&r.staff[0], 7)
	assert.False(t, ok)
}

func TestCanAssignNight(t *testing.T) {
	// 2025-04-04 is a Friday
	staff := []model.Staff{
		{ID: "full", Name: "F", Kind: model.KindFull, Night: model.NightAll},
		{ID: "wk", Name: "W", Kind: model.KindFull, Night: model.NightWeekday},
		{ID: "none", Name: "N", Kind: model.KindFull, Night: model.NightNone},
		{ID: "part", Name: "P", Kind: model.KindPart, Night: model.NightAll},
	}
	r := testRun(staff, 2025, 4)

	assert.True(t, r.canAssignNight(&r.staff[0], 2))
	assert.False(t, r.canAssignNight(&r.staff[2], 2), "no night capability")
	assert.False(t, r.canAssignNight(&r.staff[3], 2), "part-timers never take nights")

	assert.True(t, r.canAssignNight(&r.staff[1], 2), "Wednesday is fine for weekday-only")
	assert.False(t, r.canAssignNight(&r.staff[1], 4), "Friday is not")
	assert.False(t, r.canAssignNight(&r.staff[1], 5), "Saturday is not")
	assert.False(t, r.canAssignNight(&r.staff[1], 6), "Sunday is not")
}

func TestCanAssignNight_RestWindowMustBeBlank(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, Night: model.NightAll}
	r := testRun([]model.Staff{s}, 2025, 4)

	r.cells["a"][12] = Early
	assert.False(t, r.canAssignNight(&r.staff[0], 10), "day+2 must still be blank")
	assert.True(t, r.canAssignNight(&r.staff[0], 14))

	r.cells["a"][15] = NightOff
	assert.False(t, r.canAssignNight(&r.staff[0], 14), "day+1 must still be blank")
}

func TestCanAssignNight_EndOfMonth(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, Night: model.NightAll}
	r := testRun([]model.Staff{s}, 2025, 4)

	// Day 30 has no day+1 or day+2 inside the month; the window check
	// simply stops at the month boundary
	assert.True(t, r.canAssignNight(&r.staff[0], 30))
}

func TestCanAssignNight_ConsecutiveLimit(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, Night: model.NightAll}
	r := testRun([]model.Staff{s}, 2025, 4)

	// Night-capable full-timers carry the short limit of 2
	r.cells["a"][8] = Early
	r.cells["a"][9] = Early
	assert.False(t, r.canAssignNight(&r.staff[0], 10), "a third workday exceeds the limit")
	assert.True(t, r.canAssignNight(&r.staff[0], 11))
}

func TestAvailableForWork_OffFloor(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull, MonthlyOffTarget: 28}
	r := testRun([]model.Staff{s}, 2025, 4)

	// 30 blank days, target 28: two assignments are fine, the third would
	// push the staff below their off-day floor
	ok, _ := r.availableForWork(&r.staff[0], 1)
	assert.True(t, ok)
	r.cells["a"][1] = Early

	ok, _ = r.availableForWork(&r.staff[0], 10)
	assert.True(t, ok)
	r.cells["a"][10] = Early

	ok, _ = r.availableForWork(&r.staff[0], 20)
	assert.False(t, ok, "off-day floor reached")
}

func TestAvailableForWork_RequestedDay(t *testing.T) {
	s := model.Staff{ID: "a", Name: "A", Kind: model.KindFull}
	r := newRun([]model.Staff{s}, 2025, 4, map[string][]int{"a": {15}}, Settings{}, rand.New(rand.NewSource(1)))

	ok, _ := r.availableForWork(&r.staff[0], 15)
	assert.False(t, ok)
	ok, _ = r.availableForWork(&r.staff[0], 16)
	assert.True(t, ok)
}

package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

func TestPresentAt_FixedIntervals(t *testing.T) {
	s := &model.Staff{ID: "s1", Kind: model.KindFull}

	tests := []struct {
		name    string
		shift   ShiftType
		minute  int
		present bool
	}{
		{"early covers morning checkpoint", Early, MorningMinute, true},
		{"early covers noon checkpoint", Early, NoonMinute, true},
		{"early ends before evening checkpoint", Early, EveningMinute, false},
		{"late misses morning checkpoint", Late, MorningMinute, false},
		{"late covers noon checkpoint", Late, NoonMinute, true},
		{"late covers evening checkpoint", Late, EveningMinute, true},
		{"overtime covers all three", Overtime, EveningMinute, true},
		{"night counts as evening present", Night, EveningMinute, true},
		{"night absent at morning", Night, MorningMinute, false},
		{"night-off counts as morning present", NightOff, MorningMinute, true},
		{"night-off absent at noon", NightOff, NoonMinute, false},
		{"off is never present", Off, NoonMinute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, presentAt(s, tt.shift, tt.minute))
		})
	}
}

func TestPresentAt_PartUsesOwnTimes(t *testing.T) {
	s := &model.Staff{ID: "p1", Kind: model.KindPart, StartTime: "07:00", EndTime: "12:00"}

	assert.True(t, presentAt(s, Part, MorningMinute))
	assert.True(t, presentAt(s, Part, NoonMinute))
	assert.False(t, presentAt(s, Part, EveningMinute))

	// Half-open interval: not present at the end minute
	assert.False(t, presentAt(s, Part, 720))
	assert.True(t, presentAt(s, Part, 719))
}

func TestCountAt_SumsRoster(t *testing.T) {
	staff := []model.Staff{
		{ID: "a", Name: "A", Kind: model.KindFull},
		{ID: "b", Name: "B", Kind: model.KindFull},
		{ID: "c", Name: "C", Kind: model.KindPart, StartTime: "07:00", EndTime: "12:00"},
	}
	r := newRun(staff, 2025, 4, nil, Settings{}, rand.New(rand.NewSource(1)))
	r.cells["a"][1] = Early
	r.cells["b"][1] = Late
	r.cells["c"][1] = Part

	assert.Equal(t, 2, r.countAt(1, MorningMinute), "early + part at 07:00")
	assert.Equal(t, 3, r.countAt(1, NoonMinute), "all three at 10:00")
	assert.Equal(t, 1, r.countAt(1, EveningMinute), "only late at 17:45")
	assert.Equal(t, 0, r.countAt(2, NoonMinute), "blank day has nobody")
}

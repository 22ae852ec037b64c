package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/carehome-rota/pkg/core/model"
)

func TestStaffRecord_ToStaff(t *testing.T) {
	record := StaffRecord{
		ID:             "s1",
		Name:           "Tanaka",
		Kind:           KindPart,
		Night:          NightNone,
		EarlyOnly:      true,
		OffTarget:      10,
		MaxDaysPerWeek: 2,
		StartTime:      "08:00",
		EndTime:        "13:00",
	}

	s := record.ToStaff()

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, model.KindPart, s.Kind)
	assert.Equal(t, model.NightNone, s.Night)
	assert.True(t, s.EarlyOnly)
	assert.Equal(t, 10, s.MonthlyOffTarget)
	assert.Equal(t, "08:00", s.StartTime)
}

func TestStaffRecord_ToStaff_NightValues(t *testing.T) {
	tests := []struct {
		stored string
		want   model.NightCapability
	}{
		{NightNone, model.NightNone},
		{NightWeekday, model.NightWeekday},
		{NightAll, model.NightAll},
		// legacy boolean roster column
		{"true", model.NightAll},
		{"false", model.NightNone},
		// anything unrecognized degrades to no nights
		{"sometimes", model.NightNone},
		{"", model.NightNone},
	}

	for _, tt := range tests {
		s := StaffRecord{ID: "x", Kind: KindFull, Night: tt.stored}.ToStaff()
		assert.Equal(t, tt.want, s.Night, "stored value %q", tt.stored)
	}
}

func TestFromStaff_RoundTrip(t *testing.T) {
	original := model.Staff{
		ID:                      "s2",
		Name:                    "Suzuki",
		Kind:                    model.KindFull,
		Night:                   model.NightWeekday,
		CanOvertime:             true,
		MonthlyOffTarget:        9,
		MaxDaysPerWeek:          3,
		MaxConsecutiveOverride:  4,
		StartTime:               "09:00",
		EndTime:                 "17:00",
		AllowConsecutivePlusOne: true,
	}

	assert.Equal(t, original, FromStaff(original).ToStaff())
}

func TestSchema_CoversAllTables(t *testing.T) {
	schema, err := Schema()
	assert.NoError(t, err)

	var names []string
	for _, table := range schema.Tables {
		names = append(names, table.Name)
	}
	assert.Equal(t, []string{"staff_record", "off_request", "schedule_run", "schedule_entry"}, names)
}

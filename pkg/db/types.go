package db

import "github.com/jakechorley/carehome-rota/pkg/core/model"

// StaffRecord is the storable shape of one roster entry. Enumerations are
// stored as short text values so the sheet store stays human-editable.
type StaffRecord struct {
	ID             string `ssql_header:"id" ssql_type:"uuid"`
	Name           string `ssql_header:"name" ssql_type:"text"`
	Kind           string `ssql_header:"kind" ssql_type:"text"`
	Night          string `ssql_header:"night" ssql_type:"text"`
	CanOvertime    bool   `ssql_header:"can_overtime" ssql_type:"bool"`
	EarlyOnly      bool   `ssql_header:"early_only" ssql_type:"bool"`
	LateOnly       bool   `ssql_header:"late_only" ssql_type:"bool"`
	OffTarget      int    `ssql_header:"off_target" ssql_type:"int"`
	MaxDaysPerWeek int    `ssql_header:"max_days_per_week" ssql_type:"int"`
	MaxConsecutive int    `ssql_header:"max_consecutive" ssql_type:"int"`
	StartTime      string `ssql_header:"start_time" ssql_type:"text"`
	EndTime        string `ssql_header:"end_time" ssql_type:"text"`
	AllowPlusOne   bool   `ssql_header:"allow_plus_one" ssql_type:"bool"`
}

// Kind values stored in StaffRecord.Kind
const (
	KindFull = "full"
	KindPart = "part"
)

// Night capability values stored in StaffRecord.Night. The legacy boolean
// roster column maps "true" to all and "false" to none.
const (
	NightNone    = "none"
	NightWeekday = "weekday"
	NightAll     = "all"
)

// ToStaff converts a stored record into the scheduler's staff shape.
// Unknown enumeration values degrade to the safe defaults (full-time, no
// nights) rather than failing the load.
func (r StaffRecord) ToStaff() model.Staff {
	s := model.Staff{
		ID:                      r.ID,
		Name:                    r.Name,
		CanOvertime:             r.CanOvertime,
		EarlyOnly:               r.EarlyOnly,
		LateOnly:                r.LateOnly,
		MonthlyOffTarget:        r.OffTarget,
		MaxDaysPerWeek:          r.MaxDaysPerWeek,
		MaxConsecutiveOverride:  r.MaxConsecutive,
		StartTime:               r.StartTime,
		EndTime:                 r.EndTime,
		AllowConsecutivePlusOne: r.AllowPlusOne,
	}
	if r.Kind == KindPart {
		s.Kind = model.KindPart
	}
	switch r.Night {
	case NightWeekday:
		s.Night = model.NightWeekday
	case NightAll, "true":
		s.Night = model.NightAll
	}
	return s
}

// FromStaff converts a staff value back into its storable record
func FromStaff(s model.Staff) StaffRecord {
	r := StaffRecord{
		ID:             s.ID,
		Name:           s.Name,
		Kind:           KindFull,
		Night:          NightNone,
		CanOvertime:    s.CanOvertime,
		EarlyOnly:      s.EarlyOnly,
		LateOnly:       s.LateOnly,
		OffTarget:      s.MonthlyOffTarget,
		MaxDaysPerWeek: s.MaxDaysPerWeek,
		MaxConsecutive: s.MaxConsecutiveOverride,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		AllowPlusOne:   s.AllowConsecutivePlusOne,
	}
	if s.Kind == model.KindPart {
		r.Kind = KindPart
	}
	switch s.Night {
	case model.NightWeekday:
		r.Night = NightWeekday
	case model.NightAll:
		r.Night = NightAll
	}
	return r
}

// OffRequest is one requested-off day for one staff member
type OffRequest struct {
	ID      string `ssql_header:"id" ssql_type:"uuid"`
	StaffID string `ssql_header:"staff_id" ssql_type:"uuid"`
	Year    int    `ssql_header:"year" ssql_type:"int"`
	Month   int    `ssql_header:"month" ssql_type:"int"`
	Day     int    `ssql_header:"day" ssql_type:"int"`
}

// ScheduleRun records one generation run of a month's schedule
type ScheduleRun struct {
	ID           string `ssql_header:"id" ssql_type:"uuid"`
	Year         int    `ssql_header:"year" ssql_type:"int"`
	Month        int    `ssql_header:"month" ssql_type:"int"`
	GeneratedAt  string `ssql_header:"generated_at" ssql_type:"datetime"`
	WarningCount int    `ssql_header:"warning_count" ssql_type:"int"`
}

// ScheduleEntry is one (staff, day) cell of a generated schedule. Shift
// holds the display token of the assigned shift type.
type ScheduleEntry struct {
	ID      string `ssql_header:"id" ssql_type:"uuid"`
	RunID   string `ssql_header:"run_id" ssql_type:"uuid"`
	StaffID string `ssql_header:"staff_id" ssql_type:"uuid"`
	Day     int    `ssql_header:"day" ssql_type:"int"`
	Shift   string `ssql_header:"shift" ssql_type:"text"`
}

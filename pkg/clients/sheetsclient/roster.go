package sheetsclient

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jakechorley/carehome-rota/pkg/db"
)

// Expected column names in the roster tab
var rosterFields = []string{
	"ID",
	"Name",
	"Kind",
	"Night",
	"Can overtime",
	"Early only",
	"Late only",
	"Days off target",
	"Max days per week",
	"Max consecutive",
	"Start time",
	"End time",
	"Allow plus one",
}

// ListRoster reads the staff roster tab maintained by the facility manager
// and parses it into storable records. Rows without a name are skipped;
// rows without an id get a fresh one.
func (c *Client) ListRoster(spreadsheetID, tab string) ([]db.StaffRecord, error) {
	values, err := c.GetValues(spreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("roster sheet is empty")
	}

	return parseRoster(values)
}

// parseRoster converts raw spreadsheet data into staff records
func parseRoster(raw [][]interface{}) ([]db.StaffRecord, error) {
	headerRow := raw[0]
	fieldIndexes := make(map[string]int)
	for _, field := range rosterFields {
		index := -1
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && cellStr == field {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []interface{}) string {
		index := fieldIndexes[field]
		if index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return str
		}
		return ""
	}

	records := make([]db.StaffRecord, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField("Name", row)
		if name == "" {
			continue
		}

		record := db.StaffRecord{
			ID:             getField("ID", row),
			Name:           name,
			Kind:           parseKind(getField("Kind", row)),
			Night:          parseNight(getField("Night", row)),
			CanOvertime:    parseFlag(getField("Can overtime", row)),
			EarlyOnly:      parseFlag(getField("Early only", row)),
			LateOnly:       parseFlag(getField("Late only", row)),
			OffTarget:      parseInt(getField("Days off target", row)),
			MaxDaysPerWeek: parseInt(getField("Max days per week", row)),
			MaxConsecutive: parseInt(getField("Max consecutive", row)),
			StartTime:      getField("Start time", row),
			EndTime:        getField("End time", row),
			AllowPlusOne:   parseFlag(getField("Allow plus one", row)),
		}
		if record.ID == "" {
			record.ID = uuid.New().String()
		}

		records = append(records, record)
	}

	return records, nil
}

func parseKind(value string) string {
	if value == db.KindPart || value == "P" {
		return db.KindPart
	}
	return db.KindFull
}

func parseNight(value string) string {
	switch value {
	case db.NightWeekday:
		return db.NightWeekday
	case db.NightAll, "true", "yes":
		return db.NightAll
	}
	return db.NightNone
}

func parseFlag(value string) bool {
	switch value {
	case "true", "yes", "1", "TRUE":
		return true
	}
	return false
}

func parseInt(value string) int {
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

package sheetsclient

import (
	"fmt"
	"time"
)

// PublishedScheduleRow is one staff's line on the published grid
type PublishedScheduleRow struct {
	Name string
	// Shifts holds the display token for each day, index 0 = day 1
	Shifts []string
}

// PublishedSchedule is the complete month grid to publish
type PublishedSchedule struct {
	Year     int
	Month    int
	Days     int
	Rows     []PublishedScheduleRow
	Warnings []string
}

// TabTitle returns the tab name for the month, e.g. "March 2025"
func (p *PublishedSchedule) TabTitle() string {
	return fmt.Sprintf("%s %d", time.Month(p.Month).String(), p.Year)
}

// PublishSchedule writes the month grid to its tab, creating the tab on
// first publish and overwriting it on re-publish. Warnings are appended
// below the grid so the manager sees them next to the schedule.
func (c *Client) PublishSchedule(spreadsheetID string, schedule *PublishedSchedule) error {
	tabTitle := schedule.TabTitle()

	exists, err := c.HasSheet(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	grid := BuildGrid(schedule)
	if err := c.UpdateRange(spreadsheetID, tabTitle+"!A1", grid); err != nil {
		return fmt.Errorf("failed to write schedule grid: %w", err)
	}

	return nil
}

// BuildGrid renders the schedule as sheet rows: a header of day numbers,
// one row per staff, and a trailing warnings block
func BuildGrid(schedule *PublishedSchedule) [][]interface{} {
	header := make([]interface{}, 0, schedule.Days+1)
	header = append(header, "Staff")
	for d := 1; d <= schedule.Days; d++ {
		header = append(header, fmt.Sprintf("%d", d))
	}

	grid := [][]interface{}{header}
	for _, row := range schedule.Rows {
		sheetRow := make([]interface{}, 0, schedule.Days+1)
		sheetRow = append(sheetRow, row.Name)
		for d := 0; d < schedule.Days; d++ {
			if d < len(row.Shifts) {
				sheetRow = append(sheetRow, row.Shifts[d])
			} else {
				sheetRow = append(sheetRow, "")
			}
		}
		grid = append(grid, sheetRow)
	}

	if len(schedule.Warnings) > 0 {
		grid = append(grid, []interface{}{""})
		grid = append(grid, []interface{}{"Warnings"})
		for _, w := range schedule.Warnings {
			grid = append(grid, []interface{}{w})
		}
	}

	return grid
}

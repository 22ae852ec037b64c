package formsclient

import (
	"fmt"
	"sort"
	"time"

	"google.golang.org/api/forms/v1"
)

// OffRequestResponse is one staff member's parsed requested-off submission
type OffRequestResponse struct {
	StaffName string
	Email     string
	// Days are the requested days of the asked-for month, ascending
	Days []int
}

// GetOffRequestResponses fetches every response to the requested-off form
// and keeps the dates that fall in the given month. The form asks for the
// staff member's roster name and the dates they want off; dates outside
// the month are dropped here, unknown names are resolved by the caller.
func (c *Client) GetOffRequestResponses(formID string, year, month int) ([]OffRequestResponse, error) {
	responses, err := c.service.Forms.Responses.List(formID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list form responses: %w", err)
	}

	parsed := make([]OffRequestResponse, 0, len(responses.Responses))
	for _, response := range responses.Responses {
		parsed = append(parsed, parseOffRequestResponse(response, year, month))
	}
	return parsed, nil
}

// parseOffRequestResponse extracts the name answer and the date answers.
// The name is whichever text answer is not a parseable date; every
// parseable date inside the month becomes a requested day.
func parseOffRequestResponse(response *forms.FormResponse, year, month int) OffRequestResponse {
	result := OffRequestResponse{Email: response.RespondentEmail}

	seen := make(map[int]bool)
	for _, answer := range response.Answers {
		if answer.TextAnswers == nil {
			continue
		}
		for _, textAnswer := range answer.TextAnswers.Answers {
			day, isDate := parseRequestDate(textAnswer.Value)
			if isDate {
				// Dates outside the asked-for month are dropped, never
				// mistaken for the name answer
				if day.Year() == year && int(day.Month()) == month && !seen[day.Day()] {
					seen[day.Day()] = true
					result.Days = append(result.Days, day.Day())
				}
				continue
			}
			if result.StaffName == "" {
				result.StaffName = textAnswer.Value
			}
		}
	}

	sort.Ints(result.Days)
	return result
}

// parseRequestDate accepts the date formats the form can emit
func parseRequestDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "Mon Jan 2 2006", "2 January 2006"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/pkg/db"
)

// mockSender implements EmailSender for testing
type mockSender struct {
	to, subject, body string
	sends             int
	sendErr           error
}

func (m *mockSender) SendEmail(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.to, m.subject, m.body = to, subject, body
	m.sends++
	return nil
}

func TestSendWarningDigest(t *testing.T) {
	sender := &mockSender{}
	run := db.ScheduleRun{ID: "run-1", Year: 2025, Month: 3, WarningCount: 2}
	warnings := []string{
		"day 2: evening coverage 3 is below the required 4",
		"Aoki: 8 days off is below the target of 9",
	}

	err := SendWarningDigest(sender, testConfig(), zap.NewNop(), run, warnings)
	require.NoError(t, err)

	assert.Equal(t, 1, sender.sends)
	assert.Equal(t, "manager@example.com", sender.to)
	assert.Contains(t, sender.subject, "March 2025")
	assert.Contains(t, sender.subject, "2 issues")
	assert.Contains(t, sender.body, "evening coverage")
	assert.Contains(t, sender.body, "Aoki")
}

func TestSendWarningDigest_NothingToSend(t *testing.T) {
	sender := &mockSender{}

	err := SendWarningDigest(sender, testConfig(), zap.NewNop(), db.ScheduleRun{ID: "run-1"}, nil)
	require.NoError(t, err)
	assert.Zero(t, sender.sends)
}

func TestSendWarningDigest_NoManagerConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.ManagerEmail = ""

	err := SendWarningDigest(&mockSender{}, cfg, zap.NewNop(), db.ScheduleRun{}, []string{"w"})
	assert.ErrorContains(t, err, "no manager email configured")
}

func TestSendWarningDigest_SendFailure(t *testing.T) {
	sender := &mockSender{sendErr: fmt.Errorf("smtp down")}

	err := SendWarningDigest(sender, testConfig(), zap.NewNop(), db.ScheduleRun{}, []string{"w"})
	assert.ErrorContains(t, err, "failed to send warning digest")
}

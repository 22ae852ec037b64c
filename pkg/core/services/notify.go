package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/db"
)

// EmailSender defines the gmail operations notification needs
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// SendWarningDigest mails the facility manager a plain-text digest of a
// generation run's warnings. A warning-free run sends nothing.
func SendWarningDigest(
	sender EmailSender,
	cfg *config.Config,
	logger *zap.Logger,
	run db.ScheduleRun,
	warnings []string,
) error {
	if len(warnings) == 0 {
		logger.Debug("No warnings to mail", zap.String("run_id", run.ID))
		return nil
	}
	if cfg.ManagerEmail == "" {
		return fmt.Errorf("no manager email configured")
	}

	subject := fmt.Sprintf("Schedule warnings for %s %d (%d issues)",
		time.Month(run.Month).String(), run.Year, len(warnings))
	body := WarningDigest(run, warnings)

	if err := sender.SendEmail(cfg.ManagerEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send warning digest: %w", err)
	}

	logger.Info("Warning digest sent",
		zap.String("run_id", run.ID),
		zap.String("to", cfg.ManagerEmail),
		zap.Int("warnings", len(warnings)))

	return nil
}

// WarningDigest renders the digest body
func WarningDigest(run db.ScheduleRun, warnings []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The generated schedule for %s %d has %d warnings:\n\n",
		time.Month(run.Month).String(), run.Year, len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(&b, "  - %s\n", w)
	}
	b.WriteString("\nReview the schedule and adjust assignments where needed.\n")
	return b.String()
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
)

func validConfig() *Config {
	return &Config{
		Environment:      "test",
		DatabaseBackend:  "sheets",
		DatabaseSheetID:  "db789",
		ScheduleSheetID:  "sched123",
		OffRequestFormID: "form456",
		GmailUserID:      "rota@example.com",
		ManagerEmail:     "manager@example.com",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.StaffRules = []StaffRule{
		{StaffID: "s1", RRule: "FREQ=WEEKLY;BYDAY=MO"},
		{StaffID: "s2", RRule: "FREQ=WEEKLY;BYDAY=SA,SU"},
	}

	assert.NoError(t, Validate(cfg))
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		DatabaseSheetID: "db789",
		ScheduleSheetID: "sched123",
	}

	assert.NoError(t, Validate(cfg))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := validConfig()
	cfg.ScheduleSheetID = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_PostgresBackendNeedsURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseBackend = "postgres"
	cfg.PostgresURL = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "postgres_url")

	cfg.PostgresURL = "postgres://localhost/rota"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_SheetsBackendNeedsSheetID(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseSheetID = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database_sheet_id")
}

func TestValidate_UnknownBackendRejected(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseBackend = "mysql"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.StaffRules = []StaffRule{
		{StaffID: "s1", RRule: "INVALID_RRULE_SYNTAX"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_RuleMissingStaffID(t *testing.T) {
	cfg := validConfig()
	cfg.StaffRules = []StaffRule{
		{RRule: "FREQ=WEEKLY;BYDAY=MO"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database_sheet_id: db789
schedule_sheet_id: sched123
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "sheets", cfg.DatabaseBackend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGeneratorConfig_Settings(t *testing.T) {
	// Unset fields take the generator defaults
	s := GeneratorConfig{}.Settings()
	assert.Equal(t, scheduler.DefaultSettings(), s)

	// Explicit fields survive
	s = GeneratorConfig{NightRequired: 2, MaxConsecutive: 4}.Settings()
	assert.Equal(t, 2, s.NightRequired)
	assert.Equal(t, 4, s.MaxConsecutive)
	assert.Equal(t, 3, s.EarlyRequired)
}

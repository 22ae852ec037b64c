package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
)

// OAuthClientDetails holds the Google OAuth client credentials
type OAuthClientDetails struct {
	ClientID     string   `yaml:"client_id" json:"client_id"`
	ProjectID    string   `yaml:"project_id" json:"project_id"`
	AuthURI      string   `yaml:"auth_uri" json:"auth_uri"`
	TokenURI     string   `yaml:"token_uri" json:"token_uri"`
	ClientSecret string   `yaml:"client_secret" json:"client_secret"`
	RedirectURIs []string `yaml:"redirect_uris" json:"redirect_uris"`
}

// OAuthClientConfig mirrors the credentials JSON downloaded from the Google
// console; marshalling it back to JSON feeds google.ConfigFromJSON
type OAuthClientConfig struct {
	Installed OAuthClientDetails `yaml:"installed" json:"installed"`
}

// GeneratorConfig carries the schedule-generator options. Zero values fall
// back to the generator's documented defaults.
type GeneratorConfig struct {
	EarlyRequired       int `yaml:"early_required"`
	LateRequired        int `yaml:"late_required"`
	NightRequired       int `yaml:"night_required"`
	SundayEarlyRequired int `yaml:"sunday_early_required"`
	SundayLateRequired  int `yaml:"sunday_late_required"`
	SundayNightRequired int `yaml:"sunday_night_required"`
	MaxConsecutive      int `yaml:"max_consecutive"`
}

// Settings converts the config block into the generator's settings shape
func (g GeneratorConfig) Settings() scheduler.Settings {
	return scheduler.Settings{
		EarlyRequired:       g.EarlyRequired,
		LateRequired:        g.LateRequired,
		NightRequired:       g.NightRequired,
		SundayEarlyRequired: g.SundayEarlyRequired,
		SundayLateRequired:  g.SundayLateRequired,
		SundayNightRequired: g.SundayNightRequired,
		MaxConsecutive:      g.MaxConsecutive,
	}.WithDefaults()
}

// StaffRule declares a recurring unavailability for one staff member, e.g.
// "every Monday off" as an RFC 5545 recurrence rule. Rules are expanded
// into that month's requested-off days before generation.
type StaffRule struct {
	StaffID string `yaml:"staff_id" validate:"required"`
	RRule   string `yaml:"rrule" validate:"required"`
}

// Config is the application configuration
type Config struct {
	// Environment tags log files and cached OAuth tokens
	Environment string `yaml:"environment"`

	// DatabaseBackend selects the store: "sheets" (default) or "postgres"
	DatabaseBackend string `yaml:"database_backend" validate:"omitempty,oneof=sheets postgres"`

	// PostgresURL is the connection string for the postgres backend
	PostgresURL string `yaml:"postgres_url"`

	// DatabaseSheetID is the spreadsheet backing the sheets store
	DatabaseSheetID string `yaml:"database_sheet_id"`

	// RosterSheetID and RosterTab locate the manager-maintained roster
	RosterSheetID string `yaml:"roster_sheet_id"`
	RosterTab     string `yaml:"roster_tab"`

	// ScheduleSheetID is the spreadsheet the monthly grid is published to
	ScheduleSheetID string `yaml:"schedule_sheet_id" validate:"required"`

	// OffRequestFormID is the Google Form staff use to request days off
	OffRequestFormID string `yaml:"off_request_form_id"`

	// ManagerEmail receives the warning digest. GmailUserID is loaded but
	// not read: the mail client sends as the OAuth-authorised account
	GmailUserID  string `yaml:"gmail_user_id"`
	ManagerEmail string `yaml:"manager_email"`

	Generator  GeneratorConfig    `yaml:"generator"`
	StaffRules []StaffRule        `yaml:"staff_rules" validate:"dive"`
	OAuth      *OAuthClientConfig `yaml:"oauth_client"`
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = "dev"
	}
	if cfg.DatabaseBackend == "" {
		cfg.DatabaseBackend = "sheets"
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags plus the cross-field rules the tags
// cannot express: the selected backend's connection details and the
// syntax of every staff recurrence rule
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.DatabaseBackend {
	case "postgres":
		if cfg.PostgresURL == "" {
			return fmt.Errorf("config validation failed: postgres_url is required for the postgres backend")
		}
	case "sheets", "":
		if cfg.DatabaseSheetID == "" {
			return fmt.Errorf("config validation failed: database_sheet_id is required for the sheets backend")
		}
	}

	for _, rule := range cfg.StaffRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule %q for staff %s: %w", rule.RRule, rule.StaffID, err)
		}
	}

	return nil
}

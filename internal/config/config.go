package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"secretsanta/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	Port        string
	DBFile      string // full records, including the secret friend
	PublicFile  string // records without the secret friend
	RosterFile  string
	MaxAttempts int
	CodeLength  int
	Verbose     bool
	GinMode     string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load does not override variables that are already set.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:       getenv("PORT", "5000"),
		DBFile:     getenv("SANTA_DB_FILE", "db_amigo_secreto.json"),
		PublicFile: getenv("SANTA_PUBLIC_FILE", "db_participantes.json"),
		RosterFile: getenv("SANTA_ROSTER_FILE", "participants.yaml"),
		GinMode:    strings.ToLower(os.Getenv("GIN_MODE")),
	}

	var err error
	cfg.MaxAttempts, err = getenvInt("SANTA_MAX_ATTEMPTS", 1000)
	if err != nil {
		return nil, err
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("SANTA_MAX_ATTEMPTS must be positive, got %d", cfg.MaxAttempts)
	}

	cfg.CodeLength, err = getenvInt("SANTA_CODE_LENGTH", 4)
	if err != nil {
		return nil, err
	}
	if cfg.CodeLength < 1 {
		return nil, fmt.Errorf("SANTA_CODE_LENGTH must be positive, got %d", cfg.CodeLength)
	}

	if v := os.Getenv("SANTA_VERBOSE"); v != "" {
		cfg.Verbose, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SANTA_VERBOSE: %w", err)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// Roster is the list of participants and the group rules for a draw.
type Roster struct {
	Participants []models.Participant  `yaml:"participantes"`
	Restrictions models.ForbiddenRules `yaml:"restricciones"`
}

// LoadRoster reads a YAML roster file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a YAML roster document.
func ParseRoster(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	for i, p := range r.Participants {
		r.Participants[i].Name = strings.TrimSpace(p.Name)
		r.Participants[i].Group = strings.TrimSpace(p.Group)
	}
	if r.Restrictions == nil {
		r.Restrictions = models.ForbiddenRules{}
	}
	return &r, nil
}

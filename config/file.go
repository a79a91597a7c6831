package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the default config file location.
	EnvConfigPath = "NAMESDAO_CONFIG"

	DefaultRecipientAddress     = "xch1jhye8dmkhree0zr8t09rlzm9cc82mhuqtp5tlmsj4kuqvs69s2wsl90su4"
	DefaultRecipientFingerprint = "2A06D252B6B804C837E2BA2D2B3A61F48A54276C"
	// RegistrationName is shown in place of a name when registering.
	RegistrationName = "namesdao.xch"
)

// DefaultEndpoints are the lookup mirrors, tried in order.
var DefaultEndpoints = []string{
	"https://namesdaolookup.xchstorage.com",
	"https://storage1.xchstorage.cyou/names_lookup",
}

// File is the optional YAML configuration. Fields missing from the file keep
// their Default values.
type File struct {
	Endpoints            []string      `yaml:"endpoints" validate:"min=1,dive,url"`
	SenderProgram        string        `yaml:"sender_program" validate:"required"`
	RecipientAddress     string        `yaml:"recipient_address" validate:"len=62,lowercase,alphanum"`
	RecipientFingerprint string        `yaml:"recipient_fingerprint" validate:"len=40,hexadecimal"`
	RecipientKeyFile     string        `yaml:"recipient_key_file,omitempty"`
	IncludeSalt          bool          `yaml:"include_salt"`
	RetryBudget          int           `yaml:"retry_budget" validate:"min=1"`
	Backoff              time.Duration `yaml:"backoff" validate:"min=0"`
	Timeout              time.Duration `yaml:"timeout" validate:"min=0"`
	LogLevel             string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	CachePath            string        `yaml:"cache_path,omitempty"`
}

func Default() File {
	return File{
		Endpoints:            append([]string(nil), DefaultEndpoints...),
		SenderProgram:        "chia",
		RecipientAddress:     DefaultRecipientAddress,
		RecipientFingerprint: DefaultRecipientFingerprint,
		IncludeSalt:          true,
		RetryBudget:          3,
		Backoff:              time.Second,
		Timeout:              30 * time.Second,
		LogLevel:             "error",
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// DefaultPath is $NAMESDAO_CONFIG, or ~/.namesdao/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".namesdao", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return f, nil
}

func (f File) Validate() error {
	return validator.New().Struct(f)
}

// Write saves f to path, creating parent directories.
func (f File) Write(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// RecipientKey returns the armored key configured in RecipientKeyFile, or
// nil when none is configured.
func (f File) RecipientKey() ([]byte, error) {
	if f.RecipientKeyFile == "" {
		return nil, nil
	}
	return os.ReadFile(f.RecipientKeyFile)
}

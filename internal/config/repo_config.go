package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// FileName is the name of the configuration file inside the git dir
	FileName = ".metro_config"
	// EnvPrefix prefixes environment overrides, e.g. METRO_SIGNATURE_EMAIL
	EnvPrefix = "METRO"
	// DefaultBranch is the branch created repositories start on
	DefaultBranch = "main"
)

// Signature is the identity used when git config has no user
type Signature struct {
	Name  string `json:"name,omitempty" mapstructure:"name"`
	Email string `json:"email,omitempty" mapstructure:"email"`
}

// RepoConfig represents the repository configuration
type RepoConfig struct {
	DefaultBranch string    `json:"defaultBranch,omitempty" mapstructure:"defaultBranch"`
	Signature     Signature `json:"signature,omitempty" mapstructure:"signature"`
	// CommandTimeout bounds each git invocation, as a Go duration ("90s")
	CommandTimeout string `json:"commandTimeout,omitempty" mapstructure:"commandTimeout"`
}

// Path returns the configuration file path for a repository
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", FileName)
}

// defaults lists every key so environment overrides apply even when the file omits it
var defaults = map[string]any{
	"defaultBranch":   DefaultBranch,
	"signature.name":  "",
	"signature.email": "",
	"commandTimeout":  "",
}

// Load reads the effective configuration: defaults, then the repository file
// when repoRoot is set and the file exists, then METRO_* environment variables.
func Load(repoRoot string) (*RepoConfig, error) {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if repoRoot != "" {
		path := Path(repoRoot)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read configuration: %w", err)
			}
		}
	}

	var config RepoConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if _, err := config.Timeout(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Timeout returns the git command timeout, or 0 when unset
func (c *RepoConfig) Timeout() (time.Duration, error) {
	if c.CommandTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid commandTimeout %q: %w", c.CommandTimeout, err)
	}
	return d, nil
}

// GetRepoConfig reads the repository configuration file as written, without
// defaults or environment overrides
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if errors.Is(err, os.ErrNotExist) {
		return &RepoConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

// SetDefaultBranch records the branch created repositories start on
func SetDefaultBranch(repoRoot string, branch string) error {
	return update(repoRoot, func(c *RepoConfig) {
		c.DefaultBranch = branch
	})
}

// SetSignature records the fallback commit identity
func SetSignature(repoRoot string, name, email string) error {
	return update(repoRoot, func(c *RepoConfig) {
		c.Signature = Signature{Name: name, Email: email}
	})
}

func update(repoRoot string, mutate func(*RepoConfig)) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	mutate(config)

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(Path(repoRoot), configJSON, 0600)
}

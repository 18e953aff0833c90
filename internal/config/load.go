package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables with the TIKKUN_
// prefix (TIKKUN_LOG_LEVEL, TIKKUN_READING_KNOWLEDGE_BASE_PATH, ...).
// Defaults apply where nothing is set. Returns a validated Config or an
// error describing what failed.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults double as key registrations: AutomaticEnv only surfaces
	// variables for keys viper already knows about.
	v.SetDefault("log.level", "info")
	v.SetDefault("reading.letter_table_path", "")
	v.SetDefault("reading.knowledge_base_path", "")
	v.SetDefault("reading.overview_template_path", "")

	v.SetEnvPrefix("TIKKUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Reading ReadingConfig `mapstructure:"reading"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ReadingConfig contains the reading pipeline's data-file overrides. Every
// field is optional; an empty path means the embedded default is used.
// The files themselves are validated by their loaders, which enforce the
// completeness invariants (full alphabet, full knowledge base).
type ReadingConfig struct {
	// LetterTablePath points at a YAML letter table replacing the built-in
	// Pythagorean one.
	LetterTablePath string `mapstructure:"letter_table_path"`

	// KnowledgeBasePath points at a YAML knowledge base replacing the
	// embedded archetype catalog.
	KnowledgeBasePath string `mapstructure:"knowledge_base_path"`

	// OverviewTemplatePath points at a text/template file replacing the
	// embedded report overview layout.
	OverviewTemplatePath string `mapstructure:"overview_template_path"`
}

// Package config loads and validates process configuration: log level and
// the optional data-file overrides for the letter table, the archetype
// knowledge base, and the report overview template. Configuration is read
// once at startup and treated as read-only afterwards.
package config

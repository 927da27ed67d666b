// Package logging constructs the slog loggers used across moodline.
//
// Two output formats exist: a console handler that prints compact
// timestamp/level/component lines for humans, and a JSON handler for log
// files and collectors. Field keys that appear across packages (component,
// event_type, session_id) are defined here so log consumers can rely on
// stable names.
package logging

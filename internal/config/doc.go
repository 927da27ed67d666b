// Package config loads, normalizes, and validates moodline configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// DUKEGPT_API_URL and OPENAI_API_KEY. The Config type centralizes every
// knob the pipeline and CLI need; it is constructed once at startup and
// passed by reference so the hot loop performs no ambient lookups.
package config

// Package config loads the TOML configuration of the library demo and builds its slog logger.
//
// Load starts from Default, which reproduces the canonical seed (two books, two users, one
// seven-day loan returned immediately), and overlays whatever the file sets. Tables which are
// present in the file replace the defaults as a whole, e.g. a [[books]] array replaces all
// default books.
package config

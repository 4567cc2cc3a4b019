// Package constants provides centralized configuration constants for the gosplit project.
//
// This package consolidates the defaults, limits and magic numbers used across
// the codebase into a single source of truth.
//
// Organization:
//   - split.go: chunking defaults (base name, suffix length, line count, alphabet)
//   - storage.go: storage constants (size units, buffer sizes, file permissions)
//   - validation.go: validation constraints (suffix length, S3 naming, publish limits)
//   - output.go: CLI output formatting constants
//
// Modifying Constants:
// The chunking defaults mirror the historical behaviour of split(1). Changing
// them changes the file names produced for an unchanged command line, so
// scripts relying on "xaa", "xab", ... will break.
package constants

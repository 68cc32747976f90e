// Package logger is the structured logger used by the tabutils packages. It
// wraps charmbracelet/log behind a small Logger interface so callers can swap
// in their own implementation or silence output entirely.
package logger

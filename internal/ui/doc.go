// Package ui provides terminal helpers for the CLI: TTY detection, styling
// of resource lines, and interactive prompts.
package ui

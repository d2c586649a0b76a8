// Package repositories orchestrates repository lifecycle operations against
// the hub API, layering confirmation prompts, dry-run previews, and reporting
// on top of the raw client.
package repositories

// Package hubapi implements a typed client for the hub's repository
// management REST API. It covers repository lifecycle (create, delete,
// duplicate, move), settings updates (visibility and gated access), and git
// reference management (branches, tags, refs listing).
package hubapi

// Package repo assembles the hubx repository lifecycle commands: create,
// delete, duplicate, move, and settings.
package repo

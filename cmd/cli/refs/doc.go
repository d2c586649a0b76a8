// Package refs assembles the hubx git reference commands: branch and tag
// lifecycle plus reference listings.
package refs

// Package references manages git branches and tags of hub repositories and
// renders reference listings.
package references

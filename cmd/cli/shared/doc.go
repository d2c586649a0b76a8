// Package shared provides helper types reused across hubx command packages:
// logger and prompter resolution, reference argument parsing, and hub client
// construction from connection settings.
package shared

// Package cli constructs the hubx command-line interface, wiring the Cobra
// command hierarchy, configuration loader, and structured logging primitives.
// It exposes helpers to build reusable application instances and to execute
// the default command set as a reusable library.
package cli

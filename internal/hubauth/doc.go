// Package hubauth resolves hub access tokens from declared sources and
// environment fallbacks.
package hubauth

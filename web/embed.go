// Package web holds the embedded static UI for promptdeck.
package web

import "embed"

// StaticFS contains the single-page UI.
//
//go:embed static
var StaticFS embed.FS

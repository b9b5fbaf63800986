// Package builtin embeds a starter question set so the app works without
// a configured content source.
package builtin

import "embed"

//go:embed questions
var Files embed.FS

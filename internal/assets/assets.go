// Package assets embeds the compressed vocabulary payloads. Each file under
// data/ is one vocabulary, named <vocabulary>.<codec extension>; regenerate
// them from words/ with cmd/wordpack.
package assets

import "embed"

// Dir is the directory inside FS holding the payloads.
const Dir = "data"

//go:embed data/*
var FS embed.FS

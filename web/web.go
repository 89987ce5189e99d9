// Package web embeds the browser client served at the site root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// FS returns the static client files rooted at the static directory
func FS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

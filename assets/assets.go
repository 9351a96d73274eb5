// Package assets embeds the stylesheet and images served next to the page.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static images
var embedded embed.FS

// FS returns the embedded assets, rooted so that "static/styles.css" and
// "images/avatar.png" resolve.
func FS() fs.FS {
	return embedded
}


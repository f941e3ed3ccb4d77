package page

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// StaticFS serves the page's stylesheet.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Package web carries the embedded HTML templates and static assets for
// the server-rendered pages.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var static embed.FS

// StaticFS returns the static asset tree rooted at its own directory, so
// it can be mounted at /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

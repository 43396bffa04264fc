// Package web embeds the static UI bundle served by the API server.
//
// The web/out/ directory holds a prebuilt single-page app and is embedded
// at compile-time using go:embed.
//
// Usage in the API server:
//
//	import "github.com/seenimoa/commentlens/web"
//	fs := web.DistFS()  // returns io/fs.FS rooted at out/
package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
)

//go:embed all:out
var dist embed.FS

// DistFS returns a filesystem rooted at the embedded out/ directory.
// This is ready to use with http.FileServerFS or http.FS.
func DistFS() fs.FS {
	sub, err := fs.Sub(dist, "out")
	if err != nil {
		slog.Error("[Web] embedded UI missing", slog.Any("error", err))
		os.Exit(1)
	}
	return sub
}

package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates static
var content embed.FS

// TemplatesFS returns the templates filesystem
func TemplatesFS() fs.FS {
	return content
}

// StaticFS returns the static assets rooted at static/.
func StaticFS() (fs.FS, error) {
	return subDir(content, "static")
}

// subDir is fs.Sub that also requires dir to exist as a directory.
func subDir(fsys fs.FS, dir string) (fs.FS, error) {
	info, err := fs.Stat(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("embedded %s: not a directory", dir)
	}
	return fs.Sub(fsys, dir)
}

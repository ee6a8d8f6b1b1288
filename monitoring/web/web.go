// Package web holds the dashboard pages served by the monitor.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

//go:embed dist/*
var dashboard embed.FS

// DevModeEnv names the environment variable that makes the monitor serve the
// dashboard from the source tree, so that edits show without a rebuild.
const DevModeEnv = "CDTRACK_MONITOR_DEV"

// GetAssets returns the dashboard file system.
func GetAssets() http.FileSystem {
	if devMode() {
		dir := SourceDir()

		fmt.Fprintf(os.Stderr, "Serving the dashboard from %s\n", dir)

		return http.Dir(dir)
	}

	dist, err := fs.Sub(dashboard, "dist")
	if err != nil {
		panic(err)
	}

	return http.FS(dist)
}

// SourceDir is the directory the dashboard is built from.
func SourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot locate the web package")
	}

	return filepath.Join(filepath.Dir(file), "dist")
}

func devMode() bool {
	on, err := strconv.ParseBool(os.Getenv(DevModeEnv))
	return err == nil && on
}

package main

import (
	"os/exec"
	"runtime"
)

// execCommand is swapped in tests to avoid launching a real viewer.
var execCommand = exec.Command

// openViewer opens the file with the platform's default document viewer.
// The viewer is started detached; its exit status is not consumed.
func openViewer(path string) error {
	name, args := viewerCommand(runtime.GOOS, path)
	return execCommand(name, args...).Start()
}

// viewerCommand picks the launcher for the given platform.
func viewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

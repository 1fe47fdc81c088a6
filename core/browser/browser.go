package browser

import (
	"os/exec"
	"runtime"
)

// Open points the system default browser at url. The launch is
// fire-and-forget: the command is started, not waited on, and a failure
// leaves the server unaffected.
func Open(url string) error {
	name, args := command(runtime.GOOS, url)
	return exec.Command(name, args...).Start()
}

// command maps a GOOS to the platform's URL-open invocation. The empty
// argument on Windows is the window title "start" would otherwise consume.
func command(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	case "darwin":
		return "open", []string{url}
	default:
		// linux, freebsd, openbsd, netbsd
		return "xdg-open", []string{url}
	}
}

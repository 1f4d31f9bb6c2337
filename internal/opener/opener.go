// Package opener hands a file path to the operating system's default
// application. The rest of the program treats the path opaquely.
package opener

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Open launches the system handler for path. The handler is started
// detached; its own exit status is not observed.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("book file not found: %s", path)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

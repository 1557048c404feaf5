package charts

import (
	"os/exec"
	"runtime"

	"seriestat/internal/errors"
)

// Show opens a rendered chart with the platform image viewer. This is the
// optional interactive display; rendering never depends on it.
func Show(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to open %s with the system viewer", path)
	}
	return nil
}

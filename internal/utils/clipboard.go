package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// CopyToClipboard copies content to the system clipboard using the
// platform's native tool
func CopyToClipboard(content string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipeToCommand(content, "pbcopy")

	case "linux":
		// Try the usual clipboard tools in order
		for _, tool := range []string{"xclip", "xsel"} {
			if _, err := exec.LookPath(tool); err == nil {
				return pipeToCommand(content, tool, "-selection", "clipboard")
			}
		}
		return fmt.Errorf("no clipboard tool available (xclip or xsel)")

	case "windows":
		return pipeToCommand(content, "clip")

	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// pipeToCommand writes content to the command's stdin and runs it
func pipeToCommand(content, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	go func() {
		defer stdin.Close()
		stdin.Write([]byte(content))
	}()

	return cmd.Run()
}

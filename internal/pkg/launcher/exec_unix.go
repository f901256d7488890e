//go:build unix

package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// replaceProcess swaps the current process image for the bridge command,
// keeping the pid and the inherited environment.
func replaceProcess(argv []string) error {
	binary, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("exec.LookPath(%q) failed: %w", argv[0], err)
	}

	if err := syscall.Exec(binary, argv, os.Environ()); err != nil {
		return fmt.Errorf("syscall.Exec(%q) failed: %w", binary, err)
	}

	// Unreachable: a successful Exec never returns.
	return nil
}

//go:build !unix

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
)

// replaceProcess approximates process replacement on platforms without an
// exec primitive: the bridge runs as a child with inherited stdio, interrupt
// signals are forwarded to it, and its exit status becomes ours.
func replaceProcess(argv []string) error {
	binary, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("exec.LookPath(%q) failed: %w", argv[0], err)
	}

	cmd := exec.Command(binary, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start(%q) failed: %w", binary, err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	forwarderDone := make(chan struct{})
	go func() {
		defer close(forwarderDone)
		for sig := range signals {
			_ = cmd.Process.Signal(sig)
		}
	}()

	waitErr := cmd.Wait()
	signal.Stop(signals)
	close(signals)
	<-forwarderDone

	os.Exit(exitCode(waitErr))
	return nil
}

// exitCode derives a process exit code from a wait error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return 1
}

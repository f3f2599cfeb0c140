//go:build !windows

// Package stderr captures writes to file descriptor 2 while the TUI owns
// the terminal. Stray output from dependencies would otherwise corrupt the
// carousel; captured lines go to the log instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into a pipe and logs each captured line at warn
// level on logger. If capture cannot be set up the error is returned and
// output keeps going to the terminal.
func Start(logger *log.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if origStderr >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead, pipeWrite = r, w
	done = make(chan struct{})

	go forward(r, logger, done)
	return nil
}

func forward(r *os.File, logger *log.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("stderr", "line", line)
		}
	}
}

// WriteOriginal writes directly to the terminal's stderr, bypassing
// capture. Used for fatal errors after the TUI exits.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for captured lines to be
// logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if origStderr < 0 {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = -1

	// Closing the write end ends the forwarder once the pipe drains.
	pipeWrite.Close()
	<-done
	pipeRead.Close()
}

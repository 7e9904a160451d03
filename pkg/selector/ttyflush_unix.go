//go:build !windows

package selector

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// FlushTTYInput discards unread input queued on the controlling terminal, so keys
// pressed while an editor was closing are not replayed into the picker.
// It is best effort and a no-op without /dev/tty.
func FlushTTYInput() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return
	}
	defer func() { _ = tty.Close() }()

	fd := int(tty.Fd())
	if fd < 0 {
		return
	}
	tcflush(fd)

	// Terminals can still deliver replies right after the flush; drain them for a short while.
	_ = unix.SetNonblock(fd, true)
	defer func() { _ = unix.SetNonblock(fd, false) }()

	deadline := time.Now().Add(200 * time.Millisecond)
	buf := make([]byte, 512)
	for time.Now().Before(deadline) {
		n, _ := unix.Read(fd, buf)
		if n <= 0 {
			break
		}
		deadline = time.Now().Add(75 * time.Millisecond)
	}
}

package selector

import "golang.org/x/sys/unix"

func tcflush(fd int) {
	_ = unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}

//go:build unix

package source

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// classifyOSError maps an os.ReadFile error to a BufferErrorKind. On unix
// platforms it prefers the precise errno (ENOENT/EACCES) surfaced through
// unix.Errno over the coarser fs.ErrNotExist/fs.ErrPermission sentinels, so
// a wrapped but non-standard error shape still classifies correctly.
func classifyOSError(err error) BufferErrorKind {
	var errno unix.Errno
	if errors.As(err, &errno) {
		switch errno {
		case unix.ENOENT:
			return ErrorFileNotFound
		case unix.EACCES, unix.EPERM:
			return ErrorPermissionDenied
		}
		return ErrorOS
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrorFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorPermissionDenied
	default:
		return ErrorOS
	}
}

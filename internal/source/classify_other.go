//go:build !unix

package source

import (
	"errors"
	"io/fs"
)

// classifyOSError maps an os.ReadFile error to a BufferErrorKind using only
// the portable fs.ErrNotExist/fs.ErrPermission sentinels, for platforms
// without golang.org/x/sys/unix errno support.
func classifyOSError(err error) BufferErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrorFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorPermissionDenied
	default:
		return ErrorOS
	}
}

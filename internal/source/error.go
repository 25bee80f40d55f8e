package source

import "fmt"

// BufferErrorKind classifies a file-load failure.
type BufferErrorKind uint8

const (
	// ErrorOS is a platform read failure other than the kinds below.
	ErrorOS BufferErrorKind = iota
	// ErrorFileNotFound means the path does not exist.
	ErrorFileNotFound
	// ErrorPermissionDenied means read access was denied.
	ErrorPermissionDenied
	// ErrorBufferIsNull means the load produced an empty/null buffer where
	// one was not expected. LoadFile does not return it: a file that reads
	// as zero bytes loads as an empty SourceFile.
	ErrorBufferIsNull
)

func (k BufferErrorKind) String() string {
	switch k {
	case ErrorOS:
		return "os_error"
	case ErrorFileNotFound:
		return "file_not_found"
	case ErrorPermissionDenied:
		return "permission_denied"
	case ErrorBufferIsNull:
		return "buffer_is_null"
	default:
		return fmt.Sprintf("BufferErrorKind(%d)", uint8(k))
	}
}

// BufferError reports an I/O-level failure while loading a SourceFile. It
// carries no source range: buffer errors are fatal and terminate the parse
// before any position-bearing content exists.
type BufferError struct {
	Kind BufferErrorKind
	Path string
	Err  error // underlying OS error, if any
}

func (e *BufferError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return e.Kind.String()
}

func (e *BufferError) Unwrap() error {
	return e.Err
}

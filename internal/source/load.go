package source

import "os"

// LoadFile reads path and wraps its bytes in a SourceFile tagged with the
// given encoding kind (callers typically pass the result of running the
// Detector first, or BufferUTF8 when the encoding is already known).
//
// On failure it returns a *BufferError classified into one of os_error,
// file_not_found, or permission_denied. A successful read that produces
// zero bytes is not an error: the empty buffer is a valid SourceFile, per
// load_from_buffer's "empty treated as valid" rule.
func LoadFile(path string, kind BufferKind) (*SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BufferError{
			Kind: classifyOSError(err),
			Path: path,
			Err:  err,
		}
	}
	return NewSourceFile(path, NewBuffer(kind, data)), nil
}

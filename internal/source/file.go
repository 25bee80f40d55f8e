package source

// SourceFile owns a Buffer, an optional filesystem path (empty for
// in-memory sources), and the LocationMap for nodes parsed from it. Once
// constructed, its byte storage is immutable.
type SourceFile struct {
	Path     string
	buffer   Buffer
	Location *LocationMap
}

// NewSourceFile wraps buffer with an optional path and a fresh LocationMap.
func NewSourceFile(path string, buffer Buffer) *SourceFile {
	return &SourceFile{
		Path:     path,
		buffer:   buffer,
		Location: NewLocationMap(),
	}
}

// Buffer returns the file's immutable byte storage.
func (f *SourceFile) Buffer() Buffer {
	if f == nil {
		return Buffer{}
	}
	return f.buffer
}

// FromBytes adopts in-memory bytes tagged with the given encoding kind,
// mirroring load_from_buffer/load_from_string. Empty data is accepted here
// without error; the parsers' Parse reports an empty buffer as fatal.
func FromBytes(kind BufferKind, data []byte) *SourceFile {
	return NewSourceFile("", NewBuffer(kind, data))
}

// FromString adopts a string view tagged with the given encoding kind.
func FromString(kind BufferKind, s string) *SourceFile {
	return FromBytes(kind, []byte(s))
}

package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks a file that was added from memory (tests, stdin).
	// Fixes are never written back to virtual files.
	FileVirtual FileFlags = 1 << iota
	// FileHasBOM: content starts with a UTF-8 BOM (kept in Content).
	FileHasBOM
	// FileHasCRLF: content contains at least one \r\n line ending.
	FileHasCRLF
)

// File captures metadata and content for a single source file.
// Content is the immutable snapshot every span and fix offset refers to.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

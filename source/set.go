package source

// Set is an ordered, read-only collection of source files.
// Once loaded it is shared across concurrently processed diagnostics.
type Set struct {
	Files []*File

	fileMap map[string]int
}

// NewSet creates a set preserving the given file order
func NewSet(files ...*File) *Set {
	ret := &Set{Files: files, fileMap: make(map[string]int, len(files))}
	for i, file := range files {
		ret.fileMap[file.Name] = i
	}
	return ret
}

// Lookup returns a file by name
func (s *Set) Lookup(name string) *File {
	if idx, ok := s.fileMap[name]; ok {
		return s.Files[idx]
	}
	return nil
}

// Len returns number of files
func (s *Set) Len() int {
	return len(s.Files)
}

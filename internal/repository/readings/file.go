package readings

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSource streams readings from a CSV file on disk.
type FileSource struct {
	*Scanner

	// path is the cleaned filesystem location of the stream.
	path string
	// file is the open handle; closed by Close.
	file *os.File
}

// Open opens the CSV file at path for streaming.
func Open(path string) (*FileSource, error) {
	path = filepath.Clean(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open readings file: %w", err)
	}

	return &FileSource{
		Scanner: NewScanner(f),
		path:    path,
		file:    f,
	}, nil
}

// Path returns the file being streamed.
func (fs *FileSource) Path() string {
	return fs.path
}

// Close releases the underlying file.
func (fs *FileSource) Close() error {
	if fs == nil || fs.file == nil {
		return nil
	}

	return fs.file.Close()
}

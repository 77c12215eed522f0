package ports

// FileReader defines the interface for reading whole files into memory.
//
//go:generate mockgen -source=file_reader.go -destination=mocks/mock_file_reader.go -package=mocks
type FileReader interface {
	// ReadFile returns the full contents of the file at path. Any open,
	// stat or read failure is returned as an error; there is no partial
	// result.
	ReadFile(path string) ([]byte, error)
}

package library

import "fmt"

var (
	// Base error; every error in library inherits from this
	Err = fmt.Errorf("library error")

	ErrInvalidName = fmt.Errorf("invalid file name (%w)", Err)
	ErrNotExist    = fmt.Errorf("file does not exist (%w)", Err)
	ErrIsDirectory = fmt.Errorf("path is a directory (%w)", Err)
	ErrExists      = fmt.Errorf("file already exists (%w)", Err)
	ErrLibraryRoot = fmt.Errorf("cannot remove the library root (%w)", Err)
)

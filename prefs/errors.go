package prefs

import "fmt"

var (
	// Base error; every error in prefs inherits from this
	Err = fmt.Errorf("prefs error")

	ErrDecode        = fmt.Errorf("decoding error (%w)", Err)
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
)

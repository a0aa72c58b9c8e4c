package prefs

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type format struct {
	unmarshal func([]byte, any) error
}

var formatByExtension = map[string]format{
	"json": {unmarshal: json.Unmarshal},
	"toml": {unmarshal: toml.Unmarshal},
	"yaml": {unmarshal: yaml.Unmarshal},
	"yml":  {unmarshal: yaml.Unmarshal},
}

func ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func getFormat(name string) (*format, error) {
	f, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}

	return &f, nil
}

// decode unmarshals in into v using the format named by the extension of path.
func decode(path string, in []byte, v any) error {
	f, err := getFormat(ext(path))
	if err != nil {
		return err
	}

	if err := f.unmarshal(in, v); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrDecode)
	}

	return nil
}

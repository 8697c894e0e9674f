package localize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Translation file formats with built-in unmarshal support.
const (
	FormatYAML = "yaml"
	FormatYML  = "yml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// UnmarshalFunc deserializes one locale file's raw bytes into a Table.
type UnmarshalFunc func(data []byte, v any) error

func defaultUnmarshalFuncs() map[string]UnmarshalFunc {
	return map[string]UnmarshalFunc{
		FormatYAML: yaml.Unmarshal,
		FormatYML:  yaml.Unmarshal,
		FormatTOML: toml.Unmarshal,
		FormatJSON: json.Unmarshal,
	}
}

// Loader fetches the translation table for a locale.
type Loader interface {
	Load(locale string) (Table, error)
}

// FileLoader reads one translation file per locale from a directory,
// expecting files named {dir}/{locale}.{format}.
type FileLoader struct {
	dir       string
	format    string
	unmarshal UnmarshalFunc
}

// NewFileLoader creates a FileLoader for the given directory and file format.
func NewFileLoader(dir, format string, unmarshal UnmarshalFunc) *FileLoader {
	return &FileLoader{dir: dir, format: format, unmarshal: unmarshal}
}

// Load reads and deserializes the locale's file in a single blocking read.
func (l *FileLoader) Load(locale string) (Table, error) {
	path := filepath.Join(l.dir, fmt.Sprintf("%s.%s", locale, l.format))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Locale: locale, Path: path, Err: err}
	}

	var table Table
	if err = l.unmarshal(data, &table); err != nil {
		return nil, &LoadError{Locale: locale, Path: path, Err: err}
	}

	return table, nil
}

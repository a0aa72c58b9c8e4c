package prefs

import (
	"os"
	"strings"

	"github.com/fivemoreminix/vexed/ui/buffer"
	"github.com/magiconair/properties"
)

// LoadLanguage reads a language definition. Besides the preference formats it
// accepts Java .properties files, where every list is comma-separated:
//
//	name = VEX
//	keywords = if, else, for
//
// An empty path yields the built-in VEX definition.
func LoadLanguage(path string) (*buffer.Language, error) {
	if path == "" {
		lang := buffer.VEX
		return &lang, nil
	}

	if ext(path) == "properties" {
		return loadLanguageProperties(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lang := &buffer.Language{}
	if err := decode(path, data, lang); err != nil {
		return nil, err
	}
	return lang, nil
}

func loadLanguageProperties(path string) (*buffer.Language, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}

	return &buffer.Language{
		Name:      p.GetString("name", ""),
		Filetypes: splitList(p.GetString("filetypes", "")),
		Keywords:  splitList(p.GetString("keywords", "")),
		DataTypes: splitList(p.GetString("data_types", "")),
		Functions: splitList(p.GetString("functions", "")),
	}, nil
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

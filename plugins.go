package furikana

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

// 組み込みプラグイン名
const (
	FuriganaPlugin = "Furigana"
	RomajiPlugin   = "Romaji"
	StemPlugin     = "Stem"
)

var builtinPlugins = map[string]Plugin{
	FuriganaPlugin: PluginFunc(furigana),
	RomajiPlugin:   PluginFunc(romaji),
	StemPlugin:     PluginFunc(stem),
}

func BuiltinPluginNames() []string {
	return []string{FuriganaPlugin, RomajiPlugin, StemPlugin}
}

// RegisterBuiltin registers the built-in plugin called name.
func (r *PluginRegistry) RegisterBuiltin(name string) error {
	p, ok := builtinPlugins[name]
	if !ok {
		return fmt.Errorf("no built-in plugin %q", name)
	}
	r.Register(name, p)
	return nil
}

func furigana(f Fields) (interface{}, error) {
	return Furigana(f.Word, f.Reading), nil
}

// romaji renders the pronunciation with macrons, capitalized for proper nouns: 東京 -> Tōkyō.
func romaji(f Fields) (interface{}, error) {
	source := f.Pronunciation
	if source == "" {
		source = f.Reading
	}
	r := NewHepburn(true).Romanize(source)
	if f.PartOfSpeech == ProperNoun {
		r = capitalize(r)
	}
	return r, nil
}

// stem stems words written in the Latin alphabet and leaves the others as they are.
func stem(f Fields) (interface{}, error) {
	for _, r := range f.Word {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return f.Word, nil
		}
	}
	return english.Stem(f.Word, false), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

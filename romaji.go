package furikana

import (
	"fmt"
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

// Romanizer transliterates kana into the Latin alphabet.
type Romanizer interface {
	Romanize(string) string
}

const (
	RomanizationHepburn       = "hepburn"
	RomanizationHepburnMacron = "hepburn-macron"
	RomanizationHebon         = "hebon"
)

func ParseRomanization(name string) (Romanizer, error) {
	switch name {
	case RomanizationHepburn, "":
		return NewHepburn(false), nil
	case RomanizationHepburnMacron:
		return NewHepburn(true), nil
	case RomanizationHebon:
		return Hebon{}, nil
	}
	return nil, fmt.Errorf("unknown romanization %q", name)
}

// Hebon is the passport style romanization of jaconv, e.g. "おはよう" -> "ohayo".
type Hebon struct{}

func (Hebon) Romanize(s string) string {
	return jaconv.ToHebon(ToHiragana(s))
}

// Hepburn romanizes by longest match over a table of kana clusters.
// With Macrons, the prolonged sound mark becomes a macron on the preceding vowel
// instead of repeating it.
type Hepburn struct {
	Macrons bool
}

func NewHepburn(macrons bool) Hepburn {
	return Hepburn{Macrons: macrons}
}

var hepburnBase = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "i", "ゑ": "e", "を": "o",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"だ": "da", "ぢ": "ji", "づ": "zu", "で": "de", "ど": "do",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"ゔ": "vu",
	"ぁ": "a", "ぃ": "i", "ぅ": "u", "ぇ": "e", "ぉ": "o",
	"ゃ": "ya", "ゅ": "yu", "ょ": "yo", "ゎ": "wa",
	"っ": "",

	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho", "しぇ": "she",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho", "ちぇ": "che",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo", "じぇ": "je",
	"ぢゃ": "ja", "ぢゅ": "ju", "ぢょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
	"てぃ": "ti", "でぃ": "di", "とぅ": "tu", "どぅ": "du",
	"ふぁ": "fa", "ふぃ": "fi", "ふぇ": "fe", "ふぉ": "fo",
	"うぃ": "wi", "うぇ": "we", "うぉ": "wo",
	"ゔぁ": "va", "ゔぃ": "vi", "ゔぇ": "ve", "ゔぉ": "vo",
	"つぁ": "tsa", "つぃ": "tsi", "つぇ": "tse", "つぉ": "tso",
}

var hepburnTable, hepburnMaxCluster = buildHepburnTable(hepburnBase)

// buildHepburnTable adds the geminate "っ" clusters: the first consonant is
// doubled, except "ch" which takes a "t".
func buildHepburnTable(base map[string]string) (map[string]string, int) {
	table := make(map[string]string, len(base)*2)
	longest := 0
	add := func(kana, romaji string) {
		table[kana] = romaji
		if n := len([]rune(kana)); n > longest {
			longest = n
		}
	}
	for kana, romaji := range base {
		add(kana, romaji)
		if romaji == "" || isVowel(rune(romaji[0])) {
			continue
		}
		if strings.HasPrefix(romaji, "ch") {
			add("っ"+kana, "t"+romaji)
			continue
		}
		add("っ"+kana, romaji[:1]+romaji)
	}
	return table, longest
}

func (h Hepburn) Romanize(s string) string {
	runes := []rune(ToHiragana(s))
	out := make([]rune, 0, len(runes)*2)
	for i := 0; i < len(runes); {
		switch runes[i] {
		case prolongedSoundMark:
			out = h.prolong(out)
			i++
			continue
		case 'ん':
			next, _ := matchCluster(runes, i+1)
			if next != "" && (isVowel(rune(next[0])) || next[0] == 'y') {
				out = append(out, 'n', '\'')
			} else {
				out = append(out, 'n')
			}
			i++
			continue
		}
		if romaji, n := matchCluster(runes, i); n > 0 {
			out = append(out, []rune(romaji)...)
			i += n
			continue
		}
		out = append(out, runes[i])
		i++
	}
	return string(out)
}

func matchCluster(runes []rune, i int) (string, int) {
	for n := hepburnMaxCluster; n > 0; n-- {
		if i+n > len(runes) {
			continue
		}
		if romaji, ok := hepburnTable[string(runes[i:i+n])]; ok {
			return romaji, n
		}
	}
	return "", 0
}

var macrons = map[rune]rune{'a': 'ā', 'i': 'ī', 'u': 'ū', 'e': 'ē', 'o': 'ō'}

func (h Hepburn) prolong(out []rune) []rune {
	if len(out) == 0 || !isVowel(out[len(out)-1]) {
		return append(out, prolongedSoundMark)
	}
	last := out[len(out)-1]
	if h.Macrons {
		out[len(out)-1] = macrons[last]
		return out
	}
	return append(out, last)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

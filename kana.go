package furikana

import (
	"strings"
	"unicode"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

const prolongedSoundMark = 'ー'

// ひらがなとカタカナのコードポイントの差
const kanaOffset = 'ァ' - 'ぁ'

// ToHiragana converts katakana in s to hiragana. Other characters are kept.
// jaconvの表にないヰヱヮヵヶとヽヾはコードポイントをずらして変換する
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if isKatakanaLetter(r) {
			return r - kanaOffset
		}
		return r
	}, jaconv.KatakanaToHiragana(s))
}

// ToKatakana converts hiragana in s to katakana. Other characters are kept.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if isHiraganaLetter(r) {
			return r + kanaOffset
		}
		return r
	}, s)
}

// ぁ..ゖ, ゝゞ
func isHiraganaLetter(r rune) bool {
	return ('ぁ' <= r && r <= 'ゖ') || r == 'ゝ' || r == 'ゞ'
}

// ァ..ヶ, ヽヾ
func isKatakanaLetter(r rune) bool {
	return ('ァ' <= r && r <= 'ヶ') || r == 'ヽ' || r == 'ヾ'
}

func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func IsKana(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || r == prolongedSoundMark
}

func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

func IsKanaOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

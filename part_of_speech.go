package furikana

import "github.com/kotaroooo0/furikana/morphology"

// 品詞の英語ラベル
const (
	Noun          = "noun"
	ProperNoun    = "proper noun"
	Pronoun       = "pronoun"
	Number        = "number"
	Verb          = "verb"
	Adjective     = "adjective"
	Adverb        = "adverb"
	Determiner    = "determiner"
	Conjunction   = "conjunction"
	Interjection  = "interjection"
	Postposition  = "postposition"
	AuxiliaryVerb = "auxiliary verb"
	Prefix        = "prefix"
	Suffix        = "suffix"
	Symbol        = "symbol"
	Other         = "other"
)

// partOfSpeech maps the IPA (or UniDic) part of speech columns to an English label.
func partOfSpeech(fields morphology.MorphologyToken) string {
	pos1, ok := fields.Get(morphology.PartOfSpeech1)
	if !ok {
		return ""
	}
	pos2 := fields[morphology.PartOfSpeech2]
	switch pos1 {
	case "名詞":
		switch pos2 {
		case "固有名詞":
			return ProperNoun
		case "代名詞":
			return Pronoun
		case "数", "数詞":
			return Number
		case "接尾":
			return Suffix
		}
		return Noun
	case "代名詞":
		return Pronoun
	case "動詞":
		return Verb
	case "形容詞", "形状詞":
		return Adjective
	case "副詞":
		return Adverb
	case "連体詞":
		return Determiner
	case "接続詞":
		return Conjunction
	case "感動詞", "フィラー":
		return Interjection
	case "助詞":
		return Postposition
	case "助動詞":
		return AuxiliaryVerb
	case "接頭詞", "接頭辞":
		return Prefix
	case "接尾辞":
		return Suffix
	case "記号", "補助記号":
		return Symbol
	}
	return Other
}

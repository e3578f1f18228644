package furikana

import (
	"github.com/kotaroooo0/furikana/morphology"
)

const sentence = "東京に行って、パスタを食べてしまった。おいしかったです！"

// ipa builds an analyzer record the way kagome fills it from the IPA dictionary.
// Empty values are left out.
func ipa(literal, pos1, pos2, inflectionType, inflectionForm, lemma, reading, pronunciation string) morphology.MorphologyToken {
	fields := map[string]string{
		morphology.Literal:        literal,
		morphology.PartOfSpeech1:  pos1,
		morphology.PartOfSpeech2:  pos2,
		morphology.InflectionType: inflectionType,
		morphology.InflectionForm: inflectionForm,
		morphology.Lemma:          lemma,
		morphology.Reading:        reading,
		morphology.Pronunciation:  pronunciation,
	}
	m := morphology.MorphologyToken{}
	for k, v := range fields {
		if v != "" {
			m[k] = v
		}
	}
	return m
}

func sentenceRecords() []morphology.MorphologyToken {
	return []morphology.MorphologyToken{
		ipa("東京", "名詞", "固有名詞", "", "", "東京", "トウキョウ", "トーキョー"),
		ipa("に", "助詞", "格助詞", "", "", "に", "ニ", "ニ"),
		ipa("行っ", "動詞", "自立", "五段・カ行促音便", "連用タ接続", "行く", "イッ", "イッ"),
		ipa("て", "助詞", "接続助詞", "", "", "て", "テ", "テ"),
		ipa("、", "記号", "読点", "", "", "、", "、", "、"),
		ipa("パスタ", "名詞", "一般", "", "", "パスタ", "パスタ", "パスタ"),
		ipa("を", "助詞", "格助詞", "", "", "を", "ヲ", "ヲ"),
		ipa("食べ", "動詞", "自立", "一段", "連用形", "食べる", "タベ", "タベ"),
		ipa("て", "助詞", "接続助詞", "", "", "て", "テ", "テ"),
		ipa("しまっ", "動詞", "非自立", "五段・ワ行促音便", "連用タ接続", "しまう", "シマッ", "シマッ"),
		ipa("た", "助動詞", "", "特殊・タ", "基本形", "た", "タ", "タ"),
		ipa("。", "記号", "句点", "", "", "。", "。", "。"),
		ipa("おいしかっ", "形容詞", "自立", "形容詞・イ段", "連用タ接続", "おいしい", "オイシカッ", "オイシカッ"),
		ipa("た", "助動詞", "", "特殊・タ", "基本形", "た", "タ", "タ"),
		ipa("です", "助動詞", "", "特殊・デス", "基本形", "です", "デス", "デス"),
		ipa("！", "記号", "一般", "", "", "！", "！", "！"),
	}
}

func newTokens(records []morphology.MorphologyToken, plugins PluginResolver) []*Token {
	tokens := make([]*Token, len(records))
	for i, r := range records {
		tokens[i] = NewToken(r, plugins)
	}
	return tokens
}

func words(tokens []*Token) []string {
	r := make([]string, len(tokens))
	for i, t := range tokens {
		r[i] = t.Word()
	}
	return r
}

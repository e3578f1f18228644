package furikana

import (
	"strings"

	"github.com/kotaroooo0/furikana/morphology"
)

type TokenFilter interface {
	Filter([]*Token) []*Token
}

// AuxiliaryJoinFilter joins a verb or adjective with the auxiliaries,
// conjunctive particles and non-independent verbs that follow it, so that
// 食べ+て+しまっ+た becomes one token. The grammar of the joined token names
// the conjugation, e.g. "polite past". Copulas stay separate tokens.
type AuxiliaryJoinFilter struct{}

func NewAuxiliaryJoinFilter() AuxiliaryJoinFilter {
	return AuxiliaryJoinFilter{}
}

func (f AuxiliaryJoinFilter) Filter(tokens []*Token) []*Token {
	r := make([]*Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		head := tokens[i]
		j := i + 1
		if isJoinHead(head) {
			for j < len(tokens) && isJoinTail(tokens[j]) {
				j++
			}
			tails := tokens[i+1 : j]
			for _, t := range tails {
				head.join(t)
			}
			if label := conjugationLabel(tails); label != "" {
				head.SetGrammar(label)
			}
		}
		r = append(r, head)
		i = j
	}
	return r
}

func isJoinHead(t *Token) bool {
	switch t.morphemes[0][morphology.PartOfSpeech1] {
	case "動詞", "形容詞":
		return true
	}
	return false
}

func isJoinTail(t *Token) bool {
	raw := t.morphemes[0]
	pos2 := raw[morphology.PartOfSpeech2]
	switch raw[morphology.PartOfSpeech1] {
	case "助動詞":
		return !isCopula(raw)
	case "助詞":
		return pos2 == "接続助詞" && (raw.Surface() == "て" || raw.Surface() == "で")
	case "動詞":
		return pos2 == "非自立" || pos2 == "非自立可能" || pos2 == "接尾"
	}
	return false
}

// isCopula tells the copula だ/です from the past tense だ of 読んだ.
func isCopula(raw morphology.MorphologyToken) bool {
	switch raw[morphology.Lemma] {
	case "です":
		return true
	case "だ":
		return !strings.HasSuffix(raw[morphology.InflectionType], "タ")
	}
	return false
}

var conjugationLabels = map[string]string{
	"ます":  "polite",
	"た":   "past",
	"ない":  "negative",
	"ぬ":   "negative",
	"ん":   "negative",
	"たい":  "desiderative",
	"れる":  "passive",
	"られる": "passive",
	"せる":  "causative",
	"させる": "causative",
	"う":   "volitional",
	"よう":  "volitional",
	"しまう": "completive",
	"いる":  "progressive",
}

func conjugationLabel(tails []*Token) string {
	var labels []string
	for _, t := range tails {
		raw := t.morphemes[0]
		lemma := raw[morphology.Lemma]
		if lemma == "だ" {
			lemma = "た"
		}
		if l, ok := conjugationLabels[lemma]; ok {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 && len(tails) > 0 {
		switch tails[len(tails)-1].morphemes[0].Surface() {
		case "て", "で":
			return "conjunctive"
		}
	}
	return strings.Join(labels, " ")
}

type StopWordFilter struct {
	stopWords []string
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	return StopWordFilter{
		stopWords: stopWords,
	}
}

func (f StopWordFilter) Filter(tokens []*Token) []*Token {
	stopwords := make(map[string]struct{})
	for _, w := range f.stopWords {
		stopwords[w] = struct{}{}
	}
	r := make([]*Token, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopwords[token.word]; !ok {
			r = append(r, token)
		}
	}
	return r
}

package morphology

import (
	"fmt"

	log "github.com/cihub/seelog"
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

type Dictionary string

const (
	IPA     Dictionary = "ipa"
	UniDic  Dictionary = "uni"
	NEologd Dictionary = "neologd"
)

func ParseDictionary(name string) (Dictionary, error) {
	switch d := Dictionary(name); d {
	case IPA, UniDic, NEologd:
		return d, nil
	}
	return "", fmt.Errorf("unknown dictionary: %q", name)
}

func (d Dictionary) load() (*dict.Dict, error) {
	switch d {
	case IPA, "":
		return ipa.Dict(), nil
	case UniDic:
		return uni.Dict(), nil
	case NEologd:
		return ipaneologd.Dict(), nil
	}
	return nil, fmt.Errorf("unknown dictionary: %q", string(d))
}

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

func NewKagome(d Dictionary) (*Kagome, error) {
	dic, err := d.load()
	if err != nil {
		return nil, err
	}
	t, err := tokenizer.New(dic, tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	log.Infof("kagome tokenizer ready (dictionary: %s)", d)
	return &Kagome{
		kagome: t,
	}, nil
}

func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, tokenizer.Normal)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		pos := token.POS()
		if len(pos) > 1 && pos[1] == "空白" {
			continue
		}
		kagomeTokens = append(kagomeTokens, toMorphologyToken(token))
	}
	return kagomeTokens
}

// IPA辞書の素性の並び
const (
	ipaInflectionType = 4
	ipaInflectionForm = 5
	ipaBaseForm       = 6
	ipaReading        = 7
	ipaPronunciation  = 8
)

func toMorphologyToken(token tokenizer.Token) MorphologyToken {
	m := MorphologyToken{Literal: token.Surface}
	features := token.Features()

	posFields := []string{PartOfSpeech1, PartOfSpeech2, PartOfSpeech3, PartOfSpeech4}
	for i, p := range token.POS() {
		if i < len(posFields) {
			setFeature(m, posFields[i], p)
		}
	}

	lookup := func(name string, v string, ok bool, index int) {
		if !ok && index < len(features) {
			v = features[index]
		}
		setFeature(m, name, v)
	}
	v, ok := token.InflectionalType()
	lookup(InflectionType, v, ok, ipaInflectionType)
	v, ok = token.InflectionalForm()
	lookup(InflectionForm, v, ok, ipaInflectionForm)
	v, ok = token.BaseForm()
	lookup(Lemma, v, ok, ipaBaseForm)
	v, ok = token.Reading()
	lookup(Reading, v, ok, ipaReading)
	v, ok = token.Pronunciation()
	lookup(Pronunciation, v, ok, ipaPronunciation)
	return m
}

// "*"は未定義を表すので格納しない
func setFeature(m MorphologyToken, name, value string) {
	if value == "" || value == "*" {
		return
	}
	m[name] = value
}

package furikana

import (
	"fmt"
	"strings"
)

// ResultSet is the ordered sequence of tokens of one parse.
type ResultSet struct {
	tokens []*Token
}

func NewResultSet(tokens []*Token) *ResultSet {
	return &ResultSet{
		tokens: tokens,
	}
}

func (rs *ResultSet) Count() int {
	return len(rs.tokens)
}

func (rs *ResultSet) FindIndex(i int) (*Token, error) {
	if i < 0 || i >= len(rs.tokens) {
		return nil, &IndexOutOfRangeError{Index: i, Length: len(rs.tokens)}
	}
	return rs.tokens[i], nil
}

// FindWord returns the first token whose current word is word.
func (rs *ResultSet) FindWord(word string) (*Token, bool) {
	for _, t := range rs.tokens {
		if t.word == word {
			return t, true
		}
	}
	return nil, false
}

func (rs *ResultSet) Tokens() []*Token {
	r := make([]*Token, len(rs.tokens))
	copy(r, rs.tokens)
	return r
}

// Pluck returns the attribute of every token in order.
func (rs *ResultSet) Pluck(name string) ([]string, error) {
	a, err := ParseAttribute(name)
	if err != nil {
		return nil, err
	}
	return rs.pluck(a), nil
}

func (rs *ResultSet) pluck(a Attribute) []string {
	r := make([]string, len(rs.tokens))
	for i, t := range rs.tokens {
		r[i], _ = t.get(a)
	}
	return r
}

func (rs *ResultSet) Words() string {
	return strings.Join(rs.pluck(AttrWord), "")
}

func (rs *ResultSet) Lemmas() string {
	return strings.Join(rs.pluck(AttrLemma), "")
}

func (rs *ResultSet) Readings() string {
	return strings.Join(rs.pluck(AttrReading), "")
}

func (rs *ResultSet) Pronunciations() string {
	return strings.Join(rs.pluck(AttrPronunciation), "")
}

func (rs *ResultSet) PartsOfSpeech() []string {
	return rs.pluck(AttrPartOfSpeech)
}

func (rs *ResultSet) ToHiragana() *ResultSet {
	return rs.mapTokens((*Token).ToHiragana)
}

func (rs *ResultSet) ToKatakana() *ResultSet {
	return rs.mapTokens((*Token).ToKatakana)
}

func (rs *ResultSet) ToRomanization() *ResultSet {
	return rs.mapTokens((*Token).ToRomanization)
}

func (rs *ResultSet) ToRomanizationWith(r Romanizer) *ResultSet {
	return rs.mapTokens(func(t *Token) *Token {
		return t.ToRomanizationWith(r)
	})
}

func (rs *ResultSet) ToFurigana() *ResultSet {
	return rs.mapTokens((*Token).ToFurigana)
}

func (rs *ResultSet) ToFuriganaWith(f RubyFormatter) *ResultSet {
	return rs.mapTokens(func(t *Token) *Token {
		return t.ToFuriganaWith(f)
	})
}

func (rs *ResultSet) mapTokens(f func(*Token) *Token) *ResultSet {
	tokens := make([]*Token, len(rs.tokens))
	for i, t := range rs.tokens {
		tokens[i] = f(t)
	}
	return NewResultSet(tokens)
}

// Plugin returns the plugin value of every token, stopping at the first error.
func (rs *ResultSet) Plugin(name string) ([]interface{}, error) {
	values := make([]interface{}, len(rs.tokens))
	for i, t := range rs.tokens {
		v, err := t.PluginValue(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// PluginString joins the plugin values of the whole sentence.
func (rs *ResultSet) PluginString(name string) (string, error) {
	values, err := rs.Plugin(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, v := range values {
		fmt.Fprint(&b, v)
	}
	return b.String(), nil
}

// Only keeps the tokens with one of the given parts of speech.
func (rs *ResultSet) Only(partsOfSpeech ...string) *ResultSet {
	return rs.filter(partsOfSpeech, true)
}

// Except drops the tokens with one of the given parts of speech.
func (rs *ResultSet) Except(partsOfSpeech ...string) *ResultSet {
	return rs.filter(partsOfSpeech, false)
}

func (rs *ResultSet) filter(partsOfSpeech []string, keep bool) *ResultSet {
	set := make(map[string]struct{}, len(partsOfSpeech))
	for _, p := range partsOfSpeech {
		set[p] = struct{}{}
	}
	tokens := make([]*Token, 0, len(rs.tokens))
	for _, t := range rs.tokens {
		if _, ok := set[t.partOfSpeech]; ok == keep {
			tokens = append(tokens, t)
		}
	}
	return NewResultSet(tokens)
}

func (rs *ResultSet) String() string {
	var b strings.Builder
	for _, t := range rs.tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

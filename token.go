package furikana

import (
	"fmt"

	"github.com/kotaroooo0/furikana/morphology"
)

// Token is one analyzed word. The analyzer records it was built from are never
// modified; the core fields are seeded from them and can be changed freely.
type Token struct {
	morphemes []morphology.MorphologyToken

	word          string
	lemma         string
	reading       string
	pronunciation string
	partOfSpeech  string
	grammar       *string

	plugins    PluginResolver
	pluginData map[string]pluginEntry
}

type pluginEntry struct {
	value    interface{}
	override bool
}

func NewToken(fields morphology.MorphologyToken, plugins PluginResolver) *Token {
	raw := morphology.NewMorphologyToken(fields)
	literal := raw.Surface()
	t := &Token{
		morphemes:    []morphology.MorphologyToken{raw},
		word:         literal,
		lemma:        valueOr(raw, morphology.Lemma, literal),
		partOfSpeech: partOfSpeech(raw),
		plugins:      plugins,
		pluginData:   make(map[string]pluginEntry),
	}
	t.reading = valueOr(raw, morphology.Reading, literal)
	t.pronunciation = valueOr(raw, morphology.Pronunciation, t.reading)
	if g, ok := raw.Get(morphology.Grammar); ok {
		t.grammar = &g
	}
	return t
}

func valueOr(m morphology.MorphologyToken, name, fallback string) string {
	if v, ok := m.Get(name); ok {
		return v
	}
	return fallback
}

// Field returns a field exactly as the analyzer produced it.
func (t *Token) Field(name string) (string, error) {
	v, ok := t.morphemes[0].Get(name)
	if !ok {
		return "", &FieldNotFoundError{Field: name}
	}
	return v, nil
}

func (t *Token) RawFields() morphology.MorphologyToken {
	return morphology.NewMorphologyToken(t.morphemes[0])
}

// Morphemes returns every analyzer record the token was joined from.
func (t *Token) Morphemes() []morphology.MorphologyToken {
	r := make([]morphology.MorphologyToken, len(t.morphemes))
	for i, m := range t.morphemes {
		r[i] = morphology.NewMorphologyToken(m)
	}
	return r
}

func (t *Token) Word() string { return t.word }
func (t *Token) Lemma() string { return t.lemma }
func (t *Token) Reading() string { return t.reading }
func (t *Token) Pronunciation() string { return t.pronunciation }
func (t *Token) PartOfSpeech() string { return t.partOfSpeech }

// Grammar returns the grammar annotation. ok is false when the token has none.
func (t *Token) Grammar() (string, bool) {
	return t.get(AttrGrammar)
}

func (t *Token) SetWord(v string) { t.word = v }
func (t *Token) SetLemma(v string) { t.lemma = v }
func (t *Token) SetReading(v string) { t.reading = v }
func (t *Token) SetPronunciation(v string) { t.pronunciation = v }
func (t *Token) SetPartOfSpeech(v string) { t.partOfSpeech = v }
func (t *Token) SetGrammar(v string) { t.grammar = &v }
func (t *Token) ClearGrammar() { t.grammar = nil }

// Get returns a core attribute by name. An unset grammar is returned as "".
func (t *Token) Get(name string) (string, error) {
	a, err := ParseAttribute(name)
	if err != nil {
		return "", err
	}
	v, _ := t.get(a)
	return v, nil
}

func (t *Token) Set(name, value string) error {
	a, err := ParseAttribute(name)
	if err != nil {
		return err
	}
	t.set(a, value)
	return nil
}

// AppendTo concatenates suffix onto the attribute. An unset grammar has no
// string value to append to.
func (t *Token) AppendTo(name, suffix string) error {
	a, err := ParseAttribute(name)
	if err != nil {
		return err
	}
	v, ok := t.get(a)
	if !ok {
		return &InvalidAttributeError{Attribute: name}
	}
	t.set(a, v+suffix)
	return nil
}

func (t *Token) Fields() Fields {
	g, _ := t.Grammar()
	return Fields{
		Word:          t.word,
		Lemma:         t.lemma,
		Reading:       t.reading,
		Pronunciation: t.pronunciation,
		PartOfSpeech:  t.partOfSpeech,
		Grammar:       g,
	}
}

// PluginValue returns the cached value of the plugin, computing it from the
// current core fields on first use.
func (t *Token) PluginValue(name string) (interface{}, error) {
	if e, ok := t.pluginData[name]; ok {
		return e.value, nil
	}
	if t.plugins == nil {
		return nil, &PluginNotFoundError{Plugin: name, Source: DefaultPluginSource}
	}
	p, err := t.plugins.Resolve(name)
	if err != nil {
		return nil, err
	}
	v, err := p.Apply(t.Fields())
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", name, err)
	}
	t.pluginData[name] = pluginEntry{value: v}
	return v, nil
}

// SetPluginData overrides the value of the plugin, computed or not.
func (t *Token) SetPluginData(name string, value interface{}) {
	t.pluginData[name] = pluginEntry{value: value, override: true}
}

// clone copies the token. Values computed by plugins are left behind so they
// are computed again from the copy's fields; overrides are kept.
func (t *Token) clone() *Token {
	c := *t
	if t.grammar != nil {
		g := *t.grammar
		c.grammar = &g
	}
	c.pluginData = make(map[string]pluginEntry, len(t.pluginData))
	for k, e := range t.pluginData {
		if e.override {
			c.pluginData[k] = e
		}
	}
	return &c
}

func (t *Token) ToHiragana() *Token {
	return t.transliterate(ToHiragana, t.reading)
}

func (t *Token) ToKatakana() *Token {
	return t.transliterate(ToKatakana, t.reading)
}

func (t *Token) ToRomanization() *Token {
	return t.ToRomanizationWith(NewHepburn(false))
}

// ToRomanizationWith romanizes with r. Particles are romanized from their
// pronunciation so that は reads "wa".
func (t *Token) ToRomanizationWith(r Romanizer) *Token {
	source := t.reading
	if t.partOfSpeech == Postposition {
		source = t.pronunciation
	}
	return t.transliterate(r.Romanize, source)
}

func (t *Token) transliterate(convert func(string) string, wordReading string) *Token {
	c := t.clone()
	c.word = convert(t.phoneticWord(wordReading))
	c.lemma = convert(phonetic(t.lemmaSegments()))
	c.reading = convert(t.reading)
	c.pronunciation = convert(t.pronunciation)
	return c
}

func (t *Token) ToFurigana() *Token {
	return t.ToFuriganaWith(HTMLRuby{})
}

// ToFuriganaWith annotates word and lemma. Reading and pronunciation are kept.
func (t *Token) ToFuriganaWith(f RubyFormatter) *Token {
	c := t.clone()
	c.word = render(f, Align(t.word, t.reading))
	c.lemma = render(f, t.lemmaSegments())
	return c
}

func (t *Token) phoneticWord(reading string) string {
	if reading == "" || ContainsKanji(reading) {
		return t.word
	}
	return reading
}

// lemmaSegments aligns the lemma. The reading belongs to the word, so a lemma
// that differs from the word borrows the readings of the word's kanji runs.
func (t *Token) lemmaSegments() []Segment {
	if !ContainsKanji(t.lemma) {
		return []Segment{{Text: t.lemma}}
	}
	if t.lemma == t.word {
		return Align(t.lemma, t.reading)
	}
	if s, ok := realign(t.lemma, kanjiReadings(Align(t.word, t.reading))); ok {
		return s
	}
	return []Segment{{Text: t.lemma}}
}

// join appends next to t, e.g. 食べ + て.
func (t *Token) join(next *Token) {
	morphemes := make([]morphology.MorphologyToken, 0, len(t.morphemes)+len(next.morphemes))
	t.morphemes = append(append(morphemes, t.morphemes...), next.morphemes...)
	t.word += next.word
	t.reading += next.reading
	t.pronunciation += next.pronunciation
}

// String renders the original literal followed by the current word.
func (t *Token) String() string {
	return fmt.Sprintf("%s(%s)", t.morphemes[0].Surface(), t.word)
}

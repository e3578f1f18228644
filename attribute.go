package furikana

// Attribute names one of the mutable core fields of a Token.
type Attribute int

const (
	AttrWord Attribute = iota
	AttrLemma
	AttrReading
	AttrPronunciation
	AttrPartOfSpeech
	AttrGrammar
)

var attributeNames = [...]string{
	AttrWord:          "word",
	AttrLemma:         "lemma",
	AttrReading:       "reading",
	AttrPronunciation: "pronunciation",
	AttrPartOfSpeech:  "partOfSpeech",
	AttrGrammar:       "grammar",
}

func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attributeNames) {
		return "unknown"
	}
	return attributeNames[a]
}

func ParseAttribute(name string) (Attribute, error) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return 0, &InvalidAttributeError{Attribute: name}
}

// get returns the current value. ok is false only for an unset grammar.
func (t *Token) get(a Attribute) (value string, ok bool) {
	switch a {
	case AttrWord:
		return t.word, true
	case AttrLemma:
		return t.lemma, true
	case AttrReading:
		return t.reading, true
	case AttrPronunciation:
		return t.pronunciation, true
	case AttrPartOfSpeech:
		return t.partOfSpeech, true
	case AttrGrammar:
		if t.grammar == nil {
			return "", false
		}
		return *t.grammar, true
	}
	return "", false
}

func (t *Token) set(a Attribute, value string) {
	switch a {
	case AttrWord:
		t.word = value
	case AttrLemma:
		t.lemma = value
	case AttrReading:
		t.reading = value
	case AttrPronunciation:
		t.pronunciation = value
	case AttrPartOfSpeech:
		t.partOfSpeech = value
	case AttrGrammar:
		t.grammar = &value
	}
}

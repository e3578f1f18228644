package morphology

// 解析器が返すフィールド名
const (
	Literal        = "literal"
	Lemma          = "lemma"
	Reading        = "reading"
	Pronunciation  = "pronunciation"
	PartOfSpeech1  = "partOfSpeech1"
	PartOfSpeech2  = "partOfSpeech2"
	PartOfSpeech3  = "partOfSpeech3"
	PartOfSpeech4  = "partOfSpeech4"
	InflectionType = "inflectionType"
	InflectionForm = "inflectionForm"
	Grammar        = "grammar"
)

type Morphology interface {
	Analyze(string) []MorphologyToken
}

// MorphologyToken is one analyzer record, field name to value.
type MorphologyToken map[string]string

func NewMorphologyToken(fields map[string]string) MorphologyToken {
	token := make(MorphologyToken, len(fields))
	for k, v := range fields {
		token[k] = v
	}
	return token
}

func (t MorphologyToken) Get(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

func (t MorphologyToken) Surface() string {
	return t[Literal]
}

package furikana

import (
	"github.com/kotaroooo0/furikana/morphology"
)

type Tokenizer interface {
	Tokenize(string) []*Token
}

// MorphologicalTokenizer turns analyzer records into tokens that share one
// plugin resolver.
type MorphologicalTokenizer struct {
	morphology morphology.Morphology
	plugins    PluginResolver
}

func NewMorphologicalTokenizer(morphology morphology.Morphology, plugins PluginResolver) *MorphologicalTokenizer {
	return &MorphologicalTokenizer{
		morphology: morphology,
		plugins:    plugins,
	}
}

func (t *MorphologicalTokenizer) Tokenize(s string) []*Token {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]*Token, len(mTokens))
	for i, m := range mTokens {
		tokens[i] = NewToken(m, t.plugins)
	}
	return tokens
}

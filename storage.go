package furikana

import (
	log "github.com/cihub/seelog"
	"github.com/kotaroooo0/furikana/morphology"
)

// Storage keeps analyzer output per input text.
type Storage interface {
	GetAnalysis(string) ([]morphology.MorphologyToken, bool, error) // テキストの解析結果を返す。なければfalse
	SaveAnalysis(string, []morphology.MorphologyToken) error        // テキストの解析結果を保存する
}

type StorageMemoryImpl struct {
	analyses map[string][]morphology.MorphologyToken
}

func NewStorageMemoryImpl() *StorageMemoryImpl {
	return &StorageMemoryImpl{
		analyses: make(map[string][]morphology.MorphologyToken),
	}
}

func (s *StorageMemoryImpl) GetAnalysis(text string) ([]morphology.MorphologyToken, bool, error) {
	tokens, ok := s.analyses[text]
	if !ok {
		return nil, false, nil
	}
	return copyMorphologyTokens(tokens), true, nil
}

func (s *StorageMemoryImpl) SaveAnalysis(text string, tokens []morphology.MorphologyToken) error {
	s.analyses[text] = copyMorphologyTokens(tokens)
	return nil
}

func copyMorphologyTokens(tokens []morphology.MorphologyToken) []morphology.MorphologyToken {
	r := make([]morphology.MorphologyToken, len(tokens))
	for i, t := range tokens {
		r[i] = morphology.NewMorphologyToken(t)
	}
	return r
}

// CachedMorphology answers from storage before asking the analyzer. A failing
// storage never fails the analysis; the error is logged.
type CachedMorphology struct {
	morphology morphology.Morphology
	storage    Storage
}

func NewCachedMorphology(m morphology.Morphology, storage Storage) *CachedMorphology {
	return &CachedMorphology{
		morphology: m,
		storage:    storage,
	}
}

func (c *CachedMorphology) Analyze(text string) []morphology.MorphologyToken {
	tokens, ok, err := c.storage.GetAnalysis(text)
	if err != nil {
		log.Warnf("failed to read analysis of %q: %v", text, err)
	}
	if ok {
		log.Tracef("analysis of %q found in storage", text)
		return tokens
	}

	tokens = c.morphology.Analyze(text)
	if err := c.storage.SaveAnalysis(text, tokens); err != nil {
		log.Warnf("failed to save analysis of %q: %v", text, err)
	}
	return tokens
}

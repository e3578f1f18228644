package furikana

import (
	log "github.com/cihub/seelog"
)

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

func (a Analyzer) Analyze(s string) *ResultSet {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokens := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokens = f.Filter(tokens)
	}
	log.Debugf("analyzed %q into %d tokens", s, len(tokens))
	return NewResultSet(tokens)
}

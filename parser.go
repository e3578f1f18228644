package furikana

import (
	log "github.com/cihub/seelog"
	"github.com/kotaroooo0/furikana/morphology"
)

// Parser analyzes Japanese text into ResultSets.
type Parser struct {
	analyzer  Analyzer
	plugins   *PluginRegistry
	romanizer Romanizer
}

// New builds a Parser backed by kagome. Analyses are cached in MySQL when
// config.DB is set and in memory otherwise.
// The process-wide logger is only replaced when config.Verbosity is set.
func New(config Config) (*Parser, error) {
	if config.Verbosity > 0 {
		if err := SetupLogging(config.Verbosity); err != nil {
			return nil, err
		}
	}

	registry := NewPluginRegistry(config.PluginSource)
	for _, name := range config.Plugins {
		if err := registry.RegisterBuiltin(name); err != nil {
			return nil, err
		}
	}

	romanizer, err := ParseRomanization(config.Romanization)
	if err != nil {
		return nil, err
	}

	kagome, err := morphology.NewKagome(config.Dictionary)
	if err != nil {
		return nil, err
	}
	storage, err := newStorage(config.DB, config.Compress)
	if err != nil {
		return nil, err
	}

	var charFilters []CharFilter
	if len(config.CharMapping) > 0 {
		charFilters = append(charFilters, NewMappingCharFilter(config.CharMapping))
	}
	var tokenFilters []TokenFilter
	if config.JoinAuxiliaries {
		tokenFilters = append(tokenFilters, NewAuxiliaryJoinFilter())
	}
	if len(config.StopWords) > 0 {
		tokenFilters = append(tokenFilters, NewStopWordFilter(config.StopWords))
	}

	return NewParser(NewCachedMorphology(kagome, storage), registry, romanizer, charFilters, tokenFilters), nil
}

func newStorage(dbConfig *DBConfig, compress bool) (Storage, error) {
	if dbConfig == nil {
		return NewStorageMemoryImpl(), nil
	}
	db, err := NewDBClient(dbConfig)
	if err != nil {
		return nil, err
	}
	s := NewStorageRdbImpl(db)
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	log.Infof("caching analyses in %s:%s/%s", dbConfig.Addr, dbConfig.Port, dbConfig.DB)
	if compress {
		return NewStorageRdbCompressedImpl(db), nil
	}
	return s, nil
}

func NewParser(m morphology.Morphology, registry *PluginRegistry, romanizer Romanizer, charFilters []CharFilter, tokenFilters []TokenFilter) *Parser {
	return &Parser{
		analyzer:  NewAnalyzer(charFilters, NewMorphologicalTokenizer(m, registry), tokenFilters),
		plugins:   registry,
		romanizer: romanizer,
	}
}

func (p *Parser) Parse(text string) *ResultSet {
	return p.analyzer.Analyze(text)
}

// Plugins returns the registry shared by every token the parser produces.
func (p *Parser) Plugins() *PluginRegistry {
	return p.plugins
}

// Romanizer returns the scheme chosen by Config.Romanization.
func (p *Parser) Romanizer() Romanizer {
	return p.romanizer
}

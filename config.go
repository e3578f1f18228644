package furikana

import (
	"github.com/kotaroooo0/furikana/morphology"
)

// Config is the configuration of a Parser.
type Config struct {
	Dictionary      morphology.Dictionary
	Romanization    string
	Plugins         []string // 登録する組み込みプラグイン
	PluginSource    string   // プラグインが見つからないときのエラーに含める設定名
	JoinAuxiliaries bool
	StopWords       []string
	CharMapping     map[string]string
	DB              *DBConfig // nilなら解析結果はメモリにキャッシュする
	Compress        bool      // DBに保存する解析結果を圧縮する
	Verbosity       int
}

type ConfigOption func(*Config)

func NewConfig(options ...ConfigOption) Config {
	c := Config{
		Dictionary:      morphology.IPA,
		Romanization:    RomanizationHepburn,
		Plugins:         BuiltinPluginNames(),
		PluginSource:    DefaultPluginSource,
		JoinAuxiliaries: true,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func WithDictionary(d morphology.Dictionary) ConfigOption {
	return func(c *Config) {
		c.Dictionary = d
	}
}

func WithRomanization(name string) ConfigOption {
	return func(c *Config) {
		c.Romanization = name
	}
}

func WithPlugins(names ...string) ConfigOption {
	return func(c *Config) {
		c.Plugins = names
	}
}

func WithPluginSource(source string) ConfigOption {
	return func(c *Config) {
		c.PluginSource = source
	}
}

func WithoutAuxiliaryJoin() ConfigOption {
	return func(c *Config) {
		c.JoinAuxiliaries = false
	}
}

func WithStopWords(words ...string) ConfigOption {
	return func(c *Config) {
		c.StopWords = words
	}
}

func WithCharMapping(mapping map[string]string) ConfigOption {
	return func(c *Config) {
		c.CharMapping = mapping
	}
}

func WithDB(db *DBConfig) ConfigOption {
	return func(c *Config) {
		c.DB = db
	}
}

func WithCompression() ConfigOption {
	return func(c *Config) {
		c.Compress = true
	}
}

func WithVerbosity(v int) ConfigOption {
	return func(c *Config) {
		c.Verbosity = v
	}
}

package furikana

import (
	"sort"

	log "github.com/cihub/seelog"
)

// Fields is the snapshot of a Token's core fields handed to a plugin.
type Fields struct {
	Word          string
	Lemma         string
	Reading       string
	Pronunciation string
	PartOfSpeech  string
	Grammar       string
}

// Plugin computes a derived attribute of a Token.
type Plugin interface {
	Apply(Fields) (interface{}, error)
}

type PluginFunc func(Fields) (interface{}, error)

func (f PluginFunc) Apply(fields Fields) (interface{}, error) {
	return f(fields)
}

type PluginResolver interface {
	Resolve(name string) (Plugin, error)
}

// DefaultPluginSource is reported by PluginNotFoundError when a registry is
// built without naming its configuration.
const DefaultPluginSource = "Config.Plugins"

// PluginRegistry maps plugin names to plugins. It is filled once while the
// configuration is loaded and only read afterwards.
type PluginRegistry struct {
	source  string
	plugins map[string]Plugin
}

func NewPluginRegistry(source string) *PluginRegistry {
	if source == "" {
		source = DefaultPluginSource
	}
	return &PluginRegistry{
		source:  source,
		plugins: make(map[string]Plugin),
	}
}

func (r *PluginRegistry) Register(name string, p Plugin) {
	r.plugins[name] = p
}

func (r *PluginRegistry) Unregister(name string) {
	delete(r.plugins, name)
}

func (r *PluginRegistry) Resolve(name string) (Plugin, error) {
	p, ok := r.plugins[name]
	if !ok {
		log.Debugf("plugin %s is not registered in %s", name, r.source)
		return nil, &PluginNotFoundError{Plugin: name, Source: r.source}
	}
	return p, nil
}

func (r *PluginRegistry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for n := range r.plugins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package furikana

import (
	"sort"
	"strings"
)

type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter replaces every key of its mapping by the value before the
// text reaches the analyzer. Longer keys win over their prefixes.
type MappingCharFilter struct {
	mapper   map[string]string // key->valueにマッピングする
	replacer *strings.Replacer
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, mapper[k])
	}
	return &MappingCharFilter{
		mapper:   mapper,
		replacer: strings.NewReplacer(pairs...),
	}
}

func (c *MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}

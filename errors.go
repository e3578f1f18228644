package furikana

import "fmt"

// FieldNotFoundError is returned when a raw analyzer field is absent from a Token.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %s not found", e.Field)
}

// InvalidAttributeError is returned when an attribute name is not one of the
// string-valued core attributes of a Token.
type InvalidAttributeError struct {
	Attribute string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute %q", e.Attribute)
}

// PluginNotFoundError is returned when a plugin name is not registered. Source
// names where the plugin should have been configured.
type PluginNotFoundError struct {
	Plugin string
	Source string
}

func (e *PluginNotFoundError) Error() string {
	return fmt.Sprintf("plugin %s not found in %s", e.Plugin, e.Source)
}

type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

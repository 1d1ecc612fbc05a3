package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Field is a single named value of an entity snapshot
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an ordered snapshot of an entity's mutable attributes
type Fields []Field

// FieldsFromMap builds a snapshot from a map, ordering the fields by name
func FieldsFromMap(values map[string]interface{}) Fields {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make(Fields, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: values[name]})
	}
	return fields
}

// Get returns the value of the named field and whether it is present
func (f Fields) Get(name string) (interface{}, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in snapshot order
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// Change holds the serialized old and new value of a changed field
type Change struct {
	Field string `json:"-"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Changes is the ordered result of diffing two snapshots
type Changes []Change

// Get returns the change recorded for the named field
func (c Changes) Get(field string) (Change, bool) {
	for _, change := range c {
		if change.Field == field {
			return change, true
		}
	}
	return Change{}, false
}

// IsEmpty returns true if no field changed
func (c Changes) IsEmpty() bool {
	return len(c) == 0
}

// MarshalJSON encodes the changes as an object keyed by field name, keeping
// the diff order
func (c Changes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, change := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(change.Field)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(change)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package document

import "strings"

// Map is a string-keyed map that preserves insertion order. It is itself a
// Value so maps can nest.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

func (*Map) isValue() {}

// Set stores v under key. Re-setting a key keeps its original position.
// A nil value is ignored.
func (m *Map) Set(key string, v Value) {
	if v == nil {
		return
	}
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// SetText stores s as Text unless it is empty.
func (m *Map) SetText(key, s string) {
	if s = strings.TrimSpace(s); s != "" {
		m.Set(key, Text(s))
	}
}

// SetNumber stores s as a Number (or Text if not numeric) unless it is empty.
func (m *Map) SetNumber(key, s string) {
	if strings.TrimSpace(s) != "" {
		m.Set(key, NumberOf(s))
	}
}

// SetDate stores s as a Date (or Text if not a date) unless it is empty.
func (m *Map) SetDate(key, s string) {
	if strings.TrimSpace(s) != "" {
		m.Set(key, DateOf(s))
	}
}

// SetList stores l unless it is empty.
func (m *Map) SetList(key string, l List) {
	if len(l) > 0 {
		m.Set(key, l)
	}
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// GetString returns the string form of key, or "" when absent.
func (m *Map) GetString(key string) string {
	if v, ok := m.Get(key); ok {
		return v.String()
	}
	return ""
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// String renders the map inline as "key: value, key: value".
func (m *Map) String() string {
	if m == nil {
		return ""
	}
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, k+": "+m.values[k].String())
	}
	return strings.Join(parts, ", ")
}

package heartbeat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type field struct {
	key   string
	value any
}

// Snapshot is an insertion-ordered set of output fields.
type Snapshot struct {
	fields []field
	index  map[string]int
}

func NewSnapshot() *Snapshot {
	return &Snapshot{index: make(map[string]int)}
}

// Set adds key, or replaces its value in place when already present.
func (s *Snapshot) Set(key string, value any) {
	if i, ok := s.index[key]; ok {
		s.fields[i].value = value
		return
	}
	s.index[key] = len(s.fields)
	s.fields = append(s.fields, field{key: key, value: value})
}

func (s *Snapshot) Get(key string) (any, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.fields[i].value, true
}

func (s *Snapshot) Len() int { return len(s.fields) }

// Keys returns field names in insertion order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.key
	}
	return keys
}

// MarshalJSON encodes the snapshot as an object in insertion order.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", f.key, err)
		}
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

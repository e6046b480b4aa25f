package domain

// Metadata is the ordered set of post header entries.
// A repeated key keeps its first position and takes the last value.
type Metadata struct {
	keys   []string
	values map[string]string
}

func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

func (m *Metadata) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Metadata) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys returns the header keys in declaration order.
func (m *Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Metadata) Len() int {
	return len(m.keys)
}

package resource

// Memory is a Sink that keeps resources in memory. Every accepted
// AddResource is visible immediately.
type Memory struct {
	order     []string
	values    map[string]string
	keys      keySet
	Generated bool
	Closed    bool
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}, keys: keySet{}}
}

func (m *Memory) AddResource(key string, value string) error {
	if m.Generated {
		return ErrGenerated
	}
	if err := m.keys.admit(key, value); err != nil {
		return err
	}
	m.order = append(m.order, key)
	m.values[key] = value
	return nil
}

func (m *Memory) Generate() error {
	if m.Generated {
		return ErrGenerated
	}
	m.Generated = true
	return nil
}

func (m *Memory) Close() error {
	m.Closed = true
	return nil
}

// Get returns the value stored for key.
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Memory) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Map returns a copy of all resources.
func (m *Memory) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Len returns the number of resources.
func (m *Memory) Len() int {
	return len(m.order)
}

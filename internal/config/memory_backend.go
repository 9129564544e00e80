package config

// MemoryBackend keeps documents in process memory. It serves tests and any
// embedding caller that wants preference handling without touching the
// filesystem.
type MemoryBackend struct {
	data map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

// Get returns the stored document, or the empty string when none was set.
func (m *MemoryBackend) Get(filename string) (string, error) {
	return m.data[filename], nil
}

func (m *MemoryBackend) Set(filename, value string) error {
	m.data[filename] = value
	return nil
}

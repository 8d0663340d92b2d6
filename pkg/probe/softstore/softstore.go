// Package softstore abstracts the installed-software metadata store used by
// office-suite detection. On Windows it is backed by the registry; other
// platforms expose an empty store, and tests use MemStore.
package softstore

import "fmt"

// Store enumerates installed-software entries. Paths use backslash-separated
// registry-style notation regardless of backend.
type Store interface {
	// Subkeys lists the immediate child key names under path, in store
	// order. It returns an error if the path does not exist.
	Subkeys(path string) ([]string, error)

	// Value returns the named string value stored at path.
	Value(path, name string) (string, error)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	// Keys maps a path to its ordered child key names.
	Keys map[string][]string

	// Values maps "path|name" to a value.
	Values map[string]string
}

// Subkeys implements Store.
func (m *MemStore) Subkeys(path string) ([]string, error) {
	ks, ok := m.Keys[path]
	if !ok {
		return nil, fmt.Errorf("softstore: path %q not found", path)
	}
	return ks, nil
}

// Value implements Store.
func (m *MemStore) Value(path, name string) (string, error) {
	v, ok := m.Values[path+"|"+name]
	if !ok {
		return "", fmt.Errorf("softstore: value %q not found under %q", name, path)
	}
	return v, nil
}

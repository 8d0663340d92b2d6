//go:build windows

package softstore

import "golang.org/x/sys/windows/registry"

// regStore reads HKEY_LOCAL_MACHINE.
type regStore struct{}

// Open returns the platform-backed store.
func Open() Store { return regStore{} }

func (regStore) Subkeys(path string) ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	return k.ReadSubKeyNames(-1)
}

func (regStore) Value(path, name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	return v, err
}

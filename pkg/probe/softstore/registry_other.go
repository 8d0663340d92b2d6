//go:build !windows

package softstore

import (
	"fmt"
	"runtime"
)

// emptyStore is the non-Windows backend: no installed-software metadata.
type emptyStore struct{}

// Open returns the platform-backed store.
func Open() Store { return emptyStore{} }

func (emptyStore) Subkeys(string) ([]string, error) {
	return nil, fmt.Errorf("softstore: no software store on %s", runtime.GOOS)
}

func (emptyStore) Value(string, string) (string, error) {
	return "", fmt.Errorf("softstore: no software store on %s", runtime.GOOS)
}

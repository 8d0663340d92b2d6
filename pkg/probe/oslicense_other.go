//go:build !windows

package probe

import (
	"fmt"
	"runtime"
)

// unsupportedLicenseSource is used on platforms without an OS licensing
// store; every accessor reports field-level unavailability.
type unsupportedLicenseSource struct{}

// PlatformLicenseSource returns the host-backed license source.
func PlatformLicenseSource() LicenseSource { return unsupportedLicenseSource{} }

func (unsupportedLicenseSource) err() error {
	return fmt.Errorf("licensing metadata not available on %s", runtime.GOOS)
}

func (s unsupportedLicenseSource) Edition() (string, error)        { return "", s.err() }
func (s unsupportedLicenseSource) Version() (string, error)        { return "", s.err() }
func (s unsupportedLicenseSource) Build() (string, error)          { return "", s.err() }
func (s unsupportedLicenseSource) ProductID() (string, error)      { return "", s.err() }
func (s unsupportedLicenseSource) ProductKeyBlob() ([]byte, error) { return nil, s.err() }
func (s unsupportedLicenseSource) InstallDate() (string, error)    { return "", s.err() }
func (s unsupportedLicenseSource) LastUpdate() (string, error)     { return "", s.err() }

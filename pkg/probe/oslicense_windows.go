//go:build windows

package probe

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// registryLicenseSource reads licensing metadata from the CurrentVersion
// registry key.
type registryLicenseSource struct{}

// PlatformLicenseSource returns the host-backed license source.
func PlatformLicenseSource() LicenseSource { return registryLicenseSource{} }

func (registryLicenseSource) stringValue(name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	return v, err
}

func (s registryLicenseSource) Edition() (string, error)   { return s.stringValue("ProductName") }
func (s registryLicenseSource) Version() (string, error)   { return s.stringValue("DisplayVersion") }
func (s registryLicenseSource) Build() (string, error)     { return s.stringValue("CurrentBuild") }
func (s registryLicenseSource) ProductID() (string, error) { return s.stringValue("ProductId") }

func (registryLicenseSource) ProductKeyBlob() ([]byte, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	blob, _, err := k.GetBinaryValue("DigitalProductId")
	return blob, err
}

func (registryLicenseSource) InstallDate() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	ts, _, err := k.GetIntegerValue("InstallDate")
	if err != nil {
		return "", err
	}
	return time.Unix(int64(ts), 0).Format("2006-01-02 15:04:05"), nil
}

// LastUpdate asks the update service for the most recent hotfix install
// time.
func (registryLicenseSource) LastUpdate() (string, error) {
	out, err := exec.Command("powershell", "-NoProfile", "-Command",
		"(Get-HotFix | Sort-Object InstalledOn -Descending | Select-Object -First 1).InstalledOn").Output()
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return "", fmt.Errorf("no update history")
	}
	return s, nil
}

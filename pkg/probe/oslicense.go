package probe

import (
	"context"

	"github.com/shirou/gopsutil/v4/host"
)

// LicenseSource supplies platform licensing facts. Each accessor is
// independently best-effort; a failed accessor degrades the matching field
// rather than the whole probe.
type LicenseSource interface {
	Edition() (string, error)
	Version() (string, error)
	Build() (string, error)
	ProductID() (string, error)

	// ProductKeyBlob returns the raw encoded license blob containing the
	// product key window.
	ProductKeyBlob() ([]byte, error)

	InstallDate() (string, error)
	LastUpdate() (string, error)
}

// OSProbe reports the operating system edition, build, and licensing
// metadata. The product key is decoded from the platform's encoded blob and
// masked before it leaves the probe; only the last five characters remain
// visible.
type OSProbe struct {
	src LicenseSource
}

// NewOSProbe creates the OS/licensing probe over the given source. Use
// PlatformLicenseSource for the real host.
func NewOSProbe(src LicenseSource) *OSProbe { return &OSProbe{src: src} }

func (*OSProbe) Name() string  { return "os" }
func (*OSProbe) Title() string { return "Operating System" }

// Collect gathers OS metadata. Platform identity comes from the host
// subsystem with licensing fields layered on top when the source answers.
func (p *OSProbe) Collect(ctx context.Context) (Result, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Add("OS Edition", fallback(p.src.Edition, info.Platform))
	res.Add("OS Version", fallback(p.src.Version, info.PlatformVersion))
	res.Add("OS Build", fallback(p.src.Build, info.KernelVersion))
	res.Add("Product ID", fallback(p.src.ProductID, "Not available"))
	res.Fields = append(res.Fields, Field{
		Key:       "Product Key",
		Value:     p.maskedKey(),
		Sensitive: true,
	})
	res.Add("Last Update", fallback(p.src.LastUpdate, "Unknown"))
	res.Add("Installation Date", fallback(p.src.InstallDate, "Unknown"))
	return res, nil
}

// maskedKey decodes and masks the product key. Any failure along the way
// reports "Not available" rather than propagating.
func (p *OSProbe) maskedKey() string {
	blob, err := p.src.ProductKeyBlob()
	if err != nil {
		return "Not available"
	}
	key, err := decodeProductKey(blob)
	if err != nil {
		return "Not available"
	}
	return maskProductKey(key)
}

// fallback returns the accessor's value, or def when the accessor fails or
// answers empty.
func fallback(get func() (string, error), def string) string {
	v, err := get()
	if err != nil || v == "" {
		return def
	}
	return v
}

// Package inventory provides structured access to the platform hardware
// inventory (SMBIOS/DMI) used by the hardware and CPU probes. It wraps
// jaypipes/ghw so probes stay testable against a fake provider.
package inventory

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

// Provider answers individual hardware inventory questions. Each method is
// independently best-effort; callers treat a failure as a missing field, not
// a fatal error.
type Provider interface {
	// System returns the enclosure manufacturer and model.
	System() (vendor, model string, err error)

	// BIOSSerial returns the firmware-reported system serial number.
	BIOSSerial() (string, error)

	// Baseboard returns the motherboard manufacturer and model.
	Baseboard() (vendor, model string, err error)

	// CPUModel returns the CPU display name.
	CPUModel() (string, error)
}

// ghwProvider backs Provider with ghw's SMBIOS/DMI readers.
type ghwProvider struct{}

// New returns the platform-backed Provider.
func New() Provider { return ghwProvider{} }

func (ghwProvider) System() (string, string, error) {
	product, err := ghw.Product()
	if err != nil {
		return "", "", err
	}
	if unknownDMI(product.Vendor) && unknownDMI(product.Name) {
		return "", "", fmt.Errorf("product inventory empty")
	}
	return product.Vendor, product.Name, nil
}

func (ghwProvider) BIOSSerial() (string, error) {
	product, err := ghw.Product()
	if err == nil && !unknownDMI(product.SerialNumber) {
		return product.SerialNumber, nil
	}
	chassis, err := ghw.Chassis()
	if err != nil {
		return "", err
	}
	if unknownDMI(chassis.SerialNumber) {
		return "", fmt.Errorf("serial number unavailable")
	}
	return chassis.SerialNumber, nil
}

func (ghwProvider) Baseboard() (string, string, error) {
	board, err := ghw.Baseboard()
	if err != nil {
		return "", "", err
	}
	if unknownDMI(board.Vendor) && unknownDMI(board.Product) {
		return "", "", fmt.Errorf("baseboard inventory empty")
	}
	return board.Vendor, board.Product, nil
}

func (ghwProvider) CPUModel() (string, error) {
	cpu, err := ghw.CPU()
	if err != nil {
		return "", err
	}
	if len(cpu.Processors) == 0 || unknownDMI(cpu.Processors[0].Model) {
		return "", fmt.Errorf("cpu model unavailable")
	}
	return cpu.Processors[0].Model, nil
}

// unknownDMI reports DMI values that mean "not populated" rather than a real
// reading. ghw passes these through verbatim.
func unknownDMI(v string) bool {
	return v == "" || v == "unknown"
}

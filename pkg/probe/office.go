package probe

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tinyland/lab/hostreport/pkg/probe/softstore"
)

// officeVersion maps an internal version token to its product label.
type officeVersion struct {
	token string
	label string
}

// officeVersions is the fixed table of known version tokens. Matching order
// within a scan follows store enumeration order, not this table.
var officeVersions = []officeVersion{
	{"16.0", "Office 2016/2019/2021/365"},
	{"15.0", "Office 2013"},
	{"14.0", "Office 2010"},
	{"12.0", "Office 2007"},
	{"11.0", "Office 2003"},
}

// officeStorePaths are the store locations scanned for versioned entries.
var officeStorePaths = []string{
	`SOFTWARE\Microsoft\Office`,
	`SOFTWARE\Wow6432Node\Microsoft\Office`,
}

// OfficeProbe detects an installed office suite from the software store,
// falling back to conventional filesystem install locations.
type OfficeProbe struct {
	store    softstore.Store
	fallback []string
}

// NewOfficeProbe creates the office probe. A nil fallbackDirs uses the
// conventional install locations.
func NewOfficeProbe(store softstore.Store, fallbackDirs []string) *OfficeProbe {
	if fallbackDirs == nil {
		fallbackDirs = defaultOfficeDirs()
	}
	return &OfficeProbe{store: store, fallback: fallbackDirs}
}

func (*OfficeProbe) Name() string  { return "office" }
func (*OfficeProbe) Title() string { return "Office Suite" }

func (p *OfficeProbe) Collect(ctx context.Context) (Result, error) {
	if res, ok := p.fromStore(); ok {
		return res, nil
	}
	if res, ok := p.fromFilesystem(); ok {
		return res, nil
	}
	return StatusResult("Not detected"), nil
}

// fromStore scans the versioned office keys. The first matching subkey in
// store enumeration order wins.
func (p *OfficeProbe) fromStore() (Result, bool) {
	for _, path := range officeStorePaths {
		subkeys, err := p.store.Subkeys(path)
		if err != nil {
			continue
		}
		for _, sub := range subkeys {
			label, ok := officeLabel(sub)
			if !ok {
				continue
			}

			var res Result
			res.Add("Version", label)
			if installPath, err := p.store.Value(path+`\`+sub+`\Common\InstallRoot`, "Path"); err == nil {
				res.Add("Install Path", installPath)
			}
			res.Add("Detected Via", p.detectedVia(path, sub))
			return res, true
		}
	}
	return Result{}, false
}

// detectedVia reports which sub-application confirms the install, defaulting
// to "Registry" when neither application path is discoverable.
func (p *OfficeProbe) detectedVia(path, sub string) string {
	if _, err := p.store.Value(path+`\`+sub+`\Word\InstallRoot`, "Path"); err == nil {
		return "Word"
	}
	if _, err := p.store.Value(path+`\`+sub+`\Excel\InstallRoot`, "Path"); err == nil {
		return "Excel"
	}
	return "Registry"
}

// fromFilesystem checks the conventional install locations.
func (p *OfficeProbe) fromFilesystem() (Result, bool) {
	for _, dir := range p.fallback {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err == nil {
			var res Result
			res.Add("Version", "Office (detected via file system)")
			res.Add("Install Path", dir)
			return res, true
		}
	}
	return Result{}, false
}

// officeLabel resolves a version token against the fixed table.
func officeLabel(token string) (string, bool) {
	for _, v := range officeVersions {
		if v.token == token {
			return v.label, true
		}
	}
	return "", false
}

// defaultOfficeDirs returns the conventional install locations checked when
// the store has no versioned entry.
func defaultOfficeDirs() []string {
	pf := os.Getenv("ProgramFiles")
	if pf == "" {
		pf = `C:\Program Files`
	}
	pf86 := os.Getenv("ProgramFiles(x86)")
	if pf86 == "" {
		pf86 = `C:\Program Files (x86)`
	}
	return []string{
		filepath.Join(pf, "Microsoft Office"),
		filepath.Join(pf86, "Microsoft Office"),
	}
}

package softstore

import "testing"

func TestMemStoreSubkeys(t *testing.T) {
	store := &MemStore{
		Keys: map[string][]string{
			`SOFTWARE\Microsoft\Office`: {"15.0", "16.0", "Common"},
		},
	}

	got, err := store.Subkeys(`SOFTWARE\Microsoft\Office`)
	if err != nil {
		t.Fatalf("Subkeys: %v", err)
	}
	want := []string{"15.0", "16.0", "Common"}
	if len(got) != len(want) {
		t.Fatalf("Subkeys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Subkeys[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := store.Subkeys(`SOFTWARE\Missing`); err == nil {
		t.Error("want error for absent path")
	}
}

func TestMemStoreValue(t *testing.T) {
	store := &MemStore{
		Values: map[string]string{
			`SOFTWARE\Microsoft\Office\16.0\Common\InstallRoot|Path`: `C:\Program Files\Microsoft Office\root\Office16\`,
		},
	}

	got, err := store.Value(`SOFTWARE\Microsoft\Office\16.0\Common\InstallRoot`, "Path")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if got != `C:\Program Files\Microsoft Office\root\Office16\` {
		t.Errorf("Value = %q", got)
	}

	if _, err := store.Value(`SOFTWARE\Microsoft\Office\16.0\Common\InstallRoot`, "Other"); err == nil {
		t.Error("want error for absent value name")
	}
}

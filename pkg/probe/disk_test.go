package probe

import (
	"testing"
)

func TestDiskProbeCollectRoot(t *testing.T) {
	res := mustCollect(t, NewDiskProbe([]string{"/"}))

	if len(res.Sections) == 0 {
		t.Fatal("no sections for the root mount")
	}
	sec := res.Sections[0]
	for _, key := range []string{"File System", "Total Size", "Used", "Free", "Usage", "Mount Point"} {
		if !sectionHasField(sec, key) {
			t.Errorf("partition section missing field %q", key)
		}
	}
}

func TestDiskProbeSkipsUnreadableMounts(t *testing.T) {
	res := mustCollect(t, NewDiskProbe(append(missingDir(t), "/")))

	var partitions int
	for _, sec := range res.Sections {
		if sec.Title == "IO Statistics" {
			continue
		}
		partitions++
		if !sectionHasField(sec, "Mount Point") {
			t.Errorf("section %q has no Mount Point field", sec.Title)
		}
	}
	if partitions != 1 {
		t.Errorf("got %d partition sections, want 1 (unreadable mount skipped)", partitions)
	}
}

func TestIsVirtualFS(t *testing.T) {
	for _, fstype := range []string{"tmpfs", "proc", "overlay", "cgroup2"} {
		if !isVirtualFS(fstype) {
			t.Errorf("isVirtualFS(%q) = false, want true", fstype)
		}
	}
	for _, fstype := range []string{"ext4", "xfs", "btrfs", "apfs", "ntfs"} {
		if isVirtualFS(fstype) {
			t.Errorf("isVirtualFS(%q) = true, want false", fstype)
		}
	}
}

func sectionHasField(sec Section, key string) bool {
	for _, f := range sec.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

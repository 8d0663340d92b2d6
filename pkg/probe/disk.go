package probe

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// DiskProbe reports per-partition usage plus an aggregate I/O counter
// summary. Partitions whose usage cannot be read are skipped individually
// rather than failing the whole probe.
type DiskProbe struct {
	// mounts restricts collection to specific mount points; empty means
	// all non-virtual partitions.
	mounts []string
}

// NewDiskProbe creates the disk probe. A nil or empty mounts slice collects
// every real partition.
func NewDiskProbe(mounts []string) *DiskProbe { return &DiskProbe{mounts: mounts} }

func (*DiskProbe) Name() string  { return "disk" }
func (*DiskProbe) Title() string { return "Disk Information" }

func (p *DiskProbe) Collect(ctx context.Context) (Result, error) {
	var res Result

	if len(p.mounts) > 0 {
		for _, mp := range p.mounts {
			if sec, ok := partitionSection(ctx, mp, ""); ok {
				res.Sections = append(res.Sections, sec)
			}
		}
	} else {
		parts, err := disk.PartitionsWithContext(ctx, false)
		if err != nil {
			return Result{}, err
		}
		for _, part := range parts {
			if isVirtualFS(part.Fstype) {
				continue
			}
			if sec, ok := partitionSection(ctx, part.Mountpoint, part.Device); ok {
				res.Sections = append(res.Sections, sec)
			}
		}
	}

	// Aggregate I/O counters across all physical disks, omitted entirely
	// when the platform exposes none.
	if counters, err := disk.IOCountersWithContext(ctx); err == nil && len(counters) > 0 {
		var readCount, writeCount, readBytes, writeBytes uint64
		for _, c := range counters {
			readCount += c.ReadCount
			writeCount += c.WriteCount
			readBytes += c.ReadBytes
			writeBytes += c.WriteBytes
		}
		res.Sections = append(res.Sections, Section{
			Title: "IO Statistics",
			Fields: []Field{
				{Key: "Read Count", Value: fmt.Sprintf("%d", readCount)},
				{Key: "Write Count", Value: fmt.Sprintf("%d", writeCount)},
				{Key: "Read Bytes", Value: formatMiB(readBytes)},
				{Key: "Write Bytes", Value: formatMiB(writeBytes)},
			},
		})
	}

	if len(res.Sections) == 0 {
		return Result{}, fmt.Errorf("no readable partitions")
	}
	return res, nil
}

// partitionSection reads usage for one mount point. A failed read returns
// ok=false so the caller can skip the partition without failing the probe.
func partitionSection(ctx context.Context, mountpoint, device string) (Section, bool) {
	usage, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return Section{}, false
	}
	title := device
	if title == "" {
		title = mountpoint
	}
	return Section{
		Title: title,
		Fields: []Field{
			{Key: "File System", Value: usage.Fstype},
			{Key: "Total Size", Value: formatGiB(usage.Total)},
			{Key: "Used", Value: formatGiB(usage.Used)},
			{Key: "Free", Value: formatGiB(usage.Free)},
			{Key: "Usage", Value: formatPercent(usage.UsedPercent)},
			{Key: "Mount Point", Value: usage.Path},
		},
	}, true
}

// isVirtualFS reports filesystem types that do not represent real storage
// and should be skipped during enumeration.
func isVirtualFS(fstype string) bool {
	switch fstype {
	case "devfs", "devtmpfs", "tmpfs", "sysfs", "proc", "cgroup", "cgroup2",
		"autofs", "mqueue", "hugetlbfs", "debugfs", "tracefs", "securityfs",
		"pstore", "bpf", "fusectl", "configfs", "ramfs", "rpc_pipefs",
		"nfsd", "map", "devpts", "squashfs", "overlay":
		return true
	}
	return false
}

package report

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// HostInfo describes the machine a run executed on
type HostInfo struct {
	Hostname        string `json:"hostname" yaml:"hostname"`
	OS              string `json:"os" yaml:"os"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	Arch            string `json:"arch" yaml:"arch"`
	GoVersion       string `json:"go_version" yaml:"go_version"`
}

// CollectHost gathers host metadata. It never fails: fields gopsutil
// cannot read fall back to what the Go runtime knows.
func CollectHost() *HostInfo {
	info := &HostInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	if stat, err := host.Info(); err == nil {
		info.Hostname = stat.Hostname
		info.Platform = stat.Platform
		info.PlatformVersion = stat.PlatformVersion
		info.KernelVersion = stat.KernelVersion
		if stat.KernelArch != "" {
			info.Arch = stat.KernelArch
		}
	}

	if info.Hostname == "" {
		if hostname, err := os.Hostname(); err == nil {
			info.Hostname = hostname
		} else {
			info.Hostname = "unknown"
		}
	}

	return info
}

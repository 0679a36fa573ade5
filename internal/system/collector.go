package system

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

const collectTimeout = 3 * time.Second

type Snapshot struct {
	Hostname             string
	OS                   string
	Platform             string
	PlatformRelease      string
	Architecture         string
	GoVersion            string
	GoImplementation     string
	VirtualizationSystem string
	VirtualizationRole   string
}

// PlatformString is the "<name> <release>" label shown on the home page.
func (s *Snapshot) PlatformString() string {
	if s.PlatformRelease == "" {
		return s.Platform
	}
	return s.Platform + " " + s.PlatformRelease
}

// Collector reads the live host state on every call; nothing is cached.
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}

// Collect reads only what the snapshot shows. Uname-backed calls keep working
// under a partial /proc; virtualization detection is best effort.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := WithTimeout(ctx, collectTimeout)
	defer cancel()

	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("read hostname: %w", err)
	}
	release, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read kernel version: %w", err)
	}
	arch, err := host.KernelArch()
	if err != nil || arch == "" {
		arch = machineName(runtime.GOARCH)
	}
	virtSystem, virtRole, err := host.VirtualizationWithContext(ctx)
	if err != nil {
		virtSystem, virtRole = "", ""
	}

	return newSnapshot(hostname, runtime.GOOS, release, arch, virtSystem, virtRole), nil
}

func newSnapshot(hostname, goos, release, arch, virtSystem, virtRole string) *Snapshot {
	return &Snapshot{
		Hostname:             hostname,
		OS:                   goos,
		Platform:             PlatformName(goos),
		PlatformRelease:      release,
		Architecture:         arch,
		GoVersion:            runtime.Version(),
		GoImplementation:     runtime.Compiler,
		VirtualizationSystem: virtSystem,
		VirtualizationRole:   virtRole,
	}
}

// PlatformName maps a GOOS-style name to the display name uname reports.
func PlatformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "solaris":
		return "SunOS"
	case "aix":
		return "AIX"
	case "":
		return "Unknown"
	default:
		return goos
	}
}

// machineName is the uname -m spelling of a GOARCH, used when the kernel
// does not report one.
func machineName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

package system

import (
	"context"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlatformName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "Linux"},
		{"darwin", "Darwin"},
		{"windows", "Windows"},
		{"solaris", "SunOS"},
		{"plan9", "plan9"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		if got := PlatformName(tt.goos); got != tt.want {
			t.Errorf("PlatformName(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestNewSnapshot(t *testing.T) {
	got := newSnapshot("web-1", "linux", "6.1.0-18-amd64", "x86_64", "docker", "guest")
	want := &Snapshot{
		Hostname:             "web-1",
		OS:                   "linux",
		Platform:             "Linux",
		PlatformRelease:      "6.1.0-18-amd64",
		Architecture:         "x86_64",
		GoVersion:            runtime.Version(),
		GoImplementation:     runtime.Compiler,
		VirtualizationSystem: "docker",
		VirtualizationRole:   "guest",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("newSnapshot() mismatch (-want +got):\n%s", diff)
	}
	if s := got.PlatformString(); s != "Linux 6.1.0-18-amd64" {
		t.Errorf("PlatformString() = %q", s)
	}
}

func TestPlatformStringWithoutRelease(t *testing.T) {
	s := newSnapshot("web-1", "linux", "", "x86_64", "", "")
	if got := s.PlatformString(); got != "Linux" {
		t.Errorf("PlatformString() = %q, want Linux", got)
	}
}

func TestMachineName(t *testing.T) {
	for goarch, want := range map[string]string{"amd64": "x86_64", "arm64": "aarch64", "386": "i686", "riscv64": "riscv64"} {
		if got := machineName(goarch); got != want {
			t.Errorf("machineName(%q) = %q, want %q", goarch, got, want)
		}
	}
}

func TestCollect(t *testing.T) {
	s, err := NewCollector().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if s.Hostname == "" {
		t.Error("Hostname is empty")
	}
	if s.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", s.GoVersion, runtime.Version())
	}
}

func TestCollectWithoutProc(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("HOST_PROC only applies on linux")
	}
	t.Setenv("HOST_PROC", t.TempDir())

	s, err := NewCollector().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() with empty HOST_PROC error = %v", err)
	}
	if s.Hostname == "" || s.PlatformRelease == "" || s.Architecture == "" {
		t.Errorf("Collect() = %+v, want hostname, release and architecture", s)
	}
	if s.Platform != "Linux" {
		t.Errorf("Platform = %q, want Linux", s.Platform)
	}
}

package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

func TestFillFromVCS(t *testing.T) {
	tests := []struct {
		name       string
		commit     string
		settings   []debug.BuildSetting
		wantCommit string
		wantTime   string
	}{
		{
			name:   "fills unknown fields",
			commit: "unknown",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
			wantCommit: "0123456789ab",
			wantTime:   "2026-01-02T03:04:05Z",
		},
		{
			name:       "ldflags win",
			commit:     "release1",
			settings:   []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
			wantCommit: "release1",
			wantTime:   "unknown",
		},
		{
			name:       "short revision kept",
			commit:     "unknown",
			settings:   []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			wantCommit: "abc",
			wantTime:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Info{Commit: tt.commit, BuildTime: "unknown"}
			fillFromVCS(&info, tt.settings)
			if info.Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", info.Commit, tt.wantCommit)
			}
			if info.BuildTime != tt.wantTime {
				t.Errorf("BuildTime = %q, want %q", info.BuildTime, tt.wantTime)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, Version+" (") || !strings.Contains(s, runtime.Version()) {
		t.Errorf("String() = %q", s)
	}
}

package paths

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveConfigDirFlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")
	got, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir: %v", err)
	}
	want, _ := filepath.Abs("/flag/config")
	if got != want {
		t.Errorf("ResolveConfigDir = %q, want %q", got, want)
	}
}

func TestResolveConfigDirEnv(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")
	got, err := ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir: %v", err)
	}
	want, _ := filepath.Abs("/env/config")
	if got != want {
		t.Errorf("ResolveConfigDir = %q, want %q", got, want)
	}
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	// Flag beats config value and env.
	got, err := ResolveDataDir("/flag/data", "/cfg/data")
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if want, _ := filepath.Abs("/flag/data"); got != want {
		t.Errorf("ResolveDataDir = %q, want %q", got, want)
	}

	// Config value beats env.
	got, err = ResolveDataDir("", "/cfg/data")
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if want, _ := filepath.Abs("/cfg/data"); got != want {
		t.Errorf("ResolveDataDir = %q, want %q", got, want)
	}

	// Env is last before the platform default.
	got, err = ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if want, _ := filepath.Abs("/env/data"); got != want {
		t.Errorf("ResolveDataDir = %q, want %q", got, want)
	}
}

func TestDefaultDirsLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific defaults")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	cfg, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("DefaultConfigDir: %v", err)
	}
	if want := filepath.Join("/xdg/config", appDirName); cfg != want {
		t.Errorf("DefaultConfigDir = %q, want %q", cfg, want)
	}

	data, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}
	if want := filepath.Join("/xdg/data", appDirName); data != want {
		t.Errorf("DefaultDataDir = %q, want %q", data, want)
	}
}

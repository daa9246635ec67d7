package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.FlowfieldSmooth {
		t.Error("FlowfieldSmooth default = false, want true")
	}
	if cfg.FlowCostThreshold != 150 {
		t.Errorf("FlowCostThreshold default = %d, want 150", cfg.FlowCostThreshold)
	}
	if cfg.SecondsPerIter != 0.4 {
		t.Errorf("SecondsPerIter default = %v, want 0.4", cfg.SecondsPerIter)
	}
	if cfg.MaxChasers != 5000 {
		t.Errorf("MaxChasers default = %d, want 5000", cfg.MaxChasers)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "flowfield_smooth: false\nmax_chasers: 64\nseconds_per_iter: 1.5\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FlowfieldSmooth {
		t.Error("FlowfieldSmooth = true, want false from file")
	}
	if cfg.MaxChasers != 64 {
		t.Errorf("MaxChasers = %d, want 64 from file", cfg.MaxChasers)
	}
	if cfg.SecondsPerIter != 1.5 {
		t.Errorf("SecondsPerIter = %v, want 1.5 from file", cfg.SecondsPerIter)
	}
	// untouched keys keep their defaults
	if cfg.FlowCostThreshold != 150 {
		t.Errorf("FlowCostThreshold = %d, want default 150", cfg.FlowCostThreshold)
	}
}

func TestLoadSanitizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "seconds_per_iter: -2\nmax_chasers: -10\ncamera_follow_dist: 0\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SecondsPerIter != 0.4 {
		t.Errorf("SecondsPerIter = %v, want default 0.4", cfg.SecondsPerIter)
	}
	if cfg.MaxChasers != 0 {
		t.Errorf("MaxChasers = %d, want clamped 0", cfg.MaxChasers)
	}
	if cfg.CameraFollowDist != 125.0 {
		t.Errorf("CameraFollowDist = %v, want default 125", cfg.CameraFollowDist)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_chasers: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load on malformed YAML returned nil error")
	}
}

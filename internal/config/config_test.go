package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesEmptyRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glgrep", "config.json")
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reg.Instances) != 0 {
		t.Errorf("got %d instances, want 0", len(reg.Instances))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	reg := &Registry{Instances: []Instance{
		{Name: "work", URL: "https://gitlab.example.com", Token: "tok1"},
		{Name: "oss", URL: "https://gitlab.com", Token: "tok2"},
	}}
	if err := Save(path, reg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Instances) != 2 {
		t.Fatalf("got %d instances, want 2", len(loaded.Instances))
	}
	if loaded.Instances[0] != reg.Instances[0] || loaded.Instances[1] != reg.Instances[1] {
		t.Errorf("round trip mismatch: %+v", loaded.Instances)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestRegistryFind(t *testing.T) {
	reg := &Registry{Instances: []Instance{
		{Name: "first", URL: "https://a.example.com", Token: "x"},
		{Name: "second", URL: "https://b.example.com", Token: "y"},
	}}

	tests := []struct {
		name     string
		lookup   string
		wantName string
		wantErr  error
	}{
		{"empty name picks first", "", "first", nil},
		{"by name", "second", "second", nil},
		{"missing", "nope", "", ErrInstanceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := reg.Find(tt.lookup)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if inst.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", inst.Name, tt.wantName)
			}
		})
	}
}

func TestRegistryFindEmpty(t *testing.T) {
	reg := &Registry{}
	if _, err := reg.Find(""); !errors.Is(err, ErrNoInstances) {
		t.Errorf("err = %v, want ErrNoInstances", err)
	}
	if _, err := reg.Find("any"); !errors.Is(err, ErrNoInstances) {
		t.Errorf("err = %v, want ErrNoInstances", err)
	}
}

func TestRegistryUpsert(t *testing.T) {
	reg := &Registry{}

	if updated := reg.Upsert(Instance{Name: "work", URL: "https://a", Token: "x"}); updated {
		t.Error("first Upsert reported update, want add")
	}
	if updated := reg.Upsert(Instance{Name: "work", URL: "https://b", Token: "y"}); !updated {
		t.Error("second Upsert reported add, want update")
	}
	if len(reg.Instances) != 1 {
		t.Fatalf("got %d instances, want 1", len(reg.Instances))
	}
	if reg.Instances[0].URL != "https://b" {
		t.Errorf("URL = %q, want replacement applied", reg.Instances[0].URL)
	}
}

func TestInstanceValidate(t *testing.T) {
	tests := []struct {
		name    string
		inst    Instance
		wantErr bool
	}{
		{"valid https", Instance{Name: "a", URL: "https://gitlab.example.com", Token: "t"}, false},
		{"valid http", Instance{Name: "a", URL: "http://localhost:8080", Token: "t"}, false},
		{"missing name", Instance{URL: "https://x", Token: "t"}, true},
		{"missing url", Instance{Name: "a", Token: "t"}, true},
		{"missing token", Instance{Name: "a", URL: "https://x"}, true},
		{"bad scheme", Instance{Name: "a", URL: "gitlab.example.com", Token: "t"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inst.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

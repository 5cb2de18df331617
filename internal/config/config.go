package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoInstances      = errors.New("no GitLab instances configured (use the config command to add one)")
	ErrInstanceNotFound = errors.New("instance not found")
)

// Instance is one configured GitLab deployment.
type Instance struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Token string `json:"token"`
}

func (i Instance) Validate() error {
	if i.Name == "" || i.URL == "" || i.Token == "" {
		return fmt.Errorf("instance requires name, url and token")
	}
	if !strings.HasPrefix(i.URL, "http://") && !strings.HasPrefix(i.URL, "https://") {
		return fmt.Errorf("instance url %q must start with http:// or https://", i.URL)
	}
	return nil
}

// Registry is the persisted instance mapping. It is loaded once at startup
// and rewritten wholesale by the config command; nothing mutates the file
// mid-run.
type Registry struct {
	Instances []Instance `json:"gitlab_instances"`
}

// Find returns the named instance, or the first configured one when name is
// empty.
func (r *Registry) Find(name string) (Instance, error) {
	if len(r.Instances) == 0 {
		return Instance{}, ErrNoInstances
	}
	if name == "" {
		return r.Instances[0], nil
	}
	for _, inst := range r.Instances {
		if inst.Name == name {
			return inst, nil
		}
	}
	return Instance{}, fmt.Errorf("GitLab instance %q: %w", name, ErrInstanceNotFound)
}

// Upsert replaces the instance with the same name, or appends. Reports
// whether an existing entry was replaced.
func (r *Registry) Upsert(inst Instance) bool {
	for i := range r.Instances {
		if r.Instances[i].Name == inst.Name {
			r.Instances[i] = inst
			return true
		}
	}
	r.Instances = append(r.Instances, inst)
	return false
}

// DefaultPath is <user config dir>/glgrep/config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "glgrep", "config.json"), nil
}

// Load reads the registry file, creating an empty one first if it does not
// exist.
func Load(path string) (*Registry, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		reg := &Registry{Instances: []Instance{}}
		if err := Save(path, reg); err != nil {
			return nil, err
		}
		return reg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &reg, nil
}

// Save rewrites the registry file in full.
func Save(path string, reg *Registry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

package profile

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults holds fallback values applied to profiles that leave
// settings unset
type Defaults struct {
	Weeks    int
	MaxPages int
}

// Loader handles loading and validation of business profile configurations
type Loader struct {
	profilesDir string
	defaults    Defaults
}

// NewLoader creates a new profile configuration loader
func NewLoader(profilesDir string, defaults Defaults) *Loader {
	return &Loader{profilesDir: profilesDir, defaults: defaults}
}

// LoadAll loads all YAML profile files from the profiles directory
func (l *Loader) LoadAll() (map[string]*Profile, error) {
	profiles := make(map[string]*Profile)

	// Check if profiles directory exists
	if _, err := os.Stat(l.profilesDir); os.IsNotExist(err) {
		return profiles, nil // Return empty map if directory doesn't exist
	}

	files, err := filepath.Glob(filepath.Join(l.profilesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	// Also check for .yml extension
	ymlFiles, err := filepath.Glob(filepath.Join(l.profilesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		p, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(p); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", file, err)
		}

		profiles[file] = p
		log.Printf("Loaded profile from %s", file)
	}

	return profiles, nil
}

// Fallback builds a single synthetic profile from a reviews URL, used
// when no profile configuration files exist
func (l *Loader) Fallback(url string) *Profile {
	p := &Profile{
		Business: BusinessInfo{ID: "default", URL: url, Name: "Google Business Reviews"},
		Settings: ProfileSettings{Enabled: true},
	}
	l.setDefaults(p)
	return p
}

// loadFile loads a single YAML profile file
func (l *Loader) loadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&p)

	return &p, nil
}

// setDefaults applies default values to a profile
func (l *Loader) setDefaults(p *Profile) {
	if p.Settings.Weeks == 0 {
		p.Settings.Weeks = l.defaults.Weeks
	}
	if p.Settings.MaxPages == 0 {
		p.Settings.MaxPages = l.defaults.MaxPages
	}
	if p.Business.ID == "" {
		p.Business.ID = p.Business.Name
	}
}

// validate validates a profile configuration
func (l *Loader) validate(p *Profile) error {
	if p.Business.URL == "" {
		return fmt.Errorf("profile URL is required")
	}
	if p.Business.Name == "" {
		return fmt.Errorf("profile name is required")
	}

	if p.Settings.Weeks < 0 {
		return fmt.Errorf("weeks must be non-negative")
	}
	if p.Settings.MaxPages < 0 {
		return fmt.Errorf("max pages must be non-negative")
	}

	return nil
}

package identity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectMap maps author display names ("Given Family") to project
// team names. The author-list assembler substitutes the project name
// for mapped authors, and the affiliation check treats a mapped name
// as an organizational signal.
type ProjectMap map[string]string

// Lookup returns the project name for a display name.
func (pm ProjectMap) Lookup(displayName string) (string, bool) {
	project, ok := pm[displayName]
	return project, ok
}

// LoadProjectMap reads a project map from a YAML file of
// "display name: project name" pairs.
func LoadProjectMap(path string) (ProjectMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project map: %w", err)
	}
	var pm ProjectMap
	if err := yaml.Unmarshal(data, &pm); err != nil {
		return nil, fmt.Errorf("parsing project map YAML: %w", err)
	}
	return pm, nil
}

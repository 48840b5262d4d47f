package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// excludeFile represents a YAML exclusions file
type excludeFile struct {
	Exclude []string `yaml:"exclude"`
}

// LoadExcludeFile reads additional excluded directory basenames from a YAML
// document of the form:
//
//	exclude:
//	  - node_modules
//	  - .git
func LoadExcludeFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading exclude file: %w", err)
	}

	var file excludeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing exclude file %s: %w", path, err)
	}

	return file.Exclude, nil
}

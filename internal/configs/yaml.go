package configs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveYAML saves a struct to a YAML file.
func SaveYAML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// LoadYAML loads a YAML file into a struct.
func LoadYAML(filePath string, data interface{}) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(content, data)
}

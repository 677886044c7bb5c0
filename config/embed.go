package config

import (
	"embed"
	"os"
)

// TuningFile is the name of the default tuning file.
const TuningFile = "tuning.yaml"

//go:embed tuning.yaml
var ConfigFS embed.FS

// Load reads name from disk. An empty name reads the embedded TuningFile.
func Load(name string) ([]byte, error) {
	if name == "" {
		return ConfigFS.ReadFile(TuningFile)
	}
	return os.ReadFile(name)
}

package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Profile carries default flag values for subcommands, loaded via --profile.
// Subcommands apply a profile's values only where the user hasn't passed the
// corresponding flag explicitly on the command line.
type Profile struct {
	Regex struct {
		Multiline bool `yaml:"multiline"`
		DotAll    bool `yaml:"dotAll"`
		Extended  bool `yaml:"extended"`
	} `yaml:"regex"`
	Number struct {
		Radix int `yaml:"radix"`
	} `yaml:"number"`
}

func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// applyProfile loads the profile named by the persistent --profile flag, if
// any, and returns it. A missing --profile flag is not an error: it simply
// means every subcommand's own flags and defaults apply unmodified.
func applyProfile() (*Profile, error) {
	if profilePath == "" {
		return nil, nil
	}
	return loadProfile(profilePath)
}

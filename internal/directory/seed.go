package directory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"example.com/activitysignup/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// DefaultSeed returns the built-in activity catalog.
func DefaultSeed() ([]domain.Activity, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads a catalog from path, falling back to the built-in catalog when path is empty.
func LoadSeed(path string) ([]domain.Activity, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML catalog.
func ParseSeed(data []byte) ([]domain.Activity, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, errors.New("seed contains no activities")
	}

	seen := make(map[string]struct{}, len(file.Activities))
	out := make([]domain.Activity, 0, len(file.Activities))
	for _, entry := range file.Activities {
		if err := entry.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q in seed", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		activity := domain.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
		}
		for _, email := range entry.Participants {
			if err := activity.Enroll(email); err != nil {
				return nil, fmt.Errorf("seed activity %q participant %q: %w", entry.Name, email, err)
			}
		}
		out = append(out, activity.Clone())
	}
	return out, nil
}

func (a seedActivity) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("seed activity name is required")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("seed activity %q: max_participants must be > 0", a.Name)
	}
	return nil
}

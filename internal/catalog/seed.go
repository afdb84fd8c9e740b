package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// SeedTrait represents a trait entry in the seed file
type SeedTrait struct {
	Name       string `json:"name"`
	BaseRarity uint32 `json:"base_rarity"`
	Cost       uint64 `json:"cost"`
}

// SeedData represents the structure of the trait seed JSON file
type SeedData struct {
	Version int         `json:"version"`
	Creator string      `json:"creator,omitempty"` // Optional: account recorded as creator, defaults to the caller
	Traits  []SeedTrait `json:"traits"`
}

// SeedLoader defines the interface for loading trait seed files
type SeedLoader interface {
	// Load loads the trait seed data from a JSON file
	Load(filePath string) (*SeedData, error)
}

type seedLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewSeedLoader creates a new SeedLoader with injected dependencies
func NewSeedLoader(fs adapter.FileSystem, json adapter.JSON) SeedLoader {
	return &seedLoader{
		fs:   fs,
		json: json,
	}
}

// Load reads and parses the seed file
func (l *seedLoader) Load(filePath string) (*SeedData, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedData
	if err := l.json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed JSON: %w", err)
	}

	seen := make(map[string]bool, len(seed.Traits))
	for _, t := range seed.Traits {
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate trait %q in seed file", t.Name)
		}
		seen[t.Name] = true
	}

	return &seed, nil
}

// DefineFunc registers a single trait type, Catalog.Define and the service operation both fit
type DefineFunc func(ctx context.Context, call domain.Call, name string, baseRarity uint32, cost domain.Amount) (*schema.TraitDefinition, error)

// Seed defines every trait of the seed data that is not registered yet.
// It returns the number of newly created definitions.
func Seed(ctx context.Context, define DefineFunc, call domain.Call, seed *SeedData) (int, error) {
	if seed == nil {
		return 0, nil
	}
	if seed.Creator != "" {
		call.Caller = domain.NormalizeAccount(seed.Creator)
	}

	created := 0
	for _, t := range seed.Traits {
		_, err := define(ctx, call, t.Name, t.BaseRarity, domain.Amount(t.Cost))
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return created, fmt.Errorf("failed to seed trait %q: %w", t.Name, err)
		}
		created++
	}

	return created, nil
}

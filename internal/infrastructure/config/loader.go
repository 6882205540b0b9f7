package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// stageExtensions are tried in order when loading a stage by name
var stageExtensions = []string{".json", ".yaml", ".yml"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON/YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json on top of the defaults
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	cfg := DefaultPhysicsConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads stages/<name> trying .json, .yaml and .yml in that order
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	for _, ext := range stageExtensions {
		p := path.Join("stages", name+ext)
		data, err := fs.ReadFile(l.fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
		}

		cfg, err := ParseStage(data, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
		}

		logger.Log.WithFields(logrus.Fields{
			"stage":     cfg.ID,
			"file":      p,
			"platforms": len(cfg.Platforms),
			"enemies":   len(cfg.Enemies),
		}).Info("stage config loaded")
		return cfg, nil
	}

	return nil, fmt.Errorf("failed to read stage %s: %w", name, fs.ErrNotExist)
}

// ParseStage decodes stage data; ext selects the format (".json", ".yaml", ".yml")
func ParseStage(data []byte, ext string) (*StageConfig, error) {
	var cfg StageConfig
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported stage format %q", ext)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

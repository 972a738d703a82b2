// Package rubric supplies the assessment configuration for a given level.
// Rubrics are versioned outside this application; this provider only loads
// and caches them.
package rubric

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/florentbo/umpire_manager/model"
)

var ErrUnknownLevel = errors.New("no rubric configured for level")

type Provider interface {
	Get(level string) (*model.AssessmentConfig, error)
	// Invalidate drops all cached rubrics so edits to the rubric files are
	// picked up on the next Get.
	Invalidate()
}

// NewFileProvider reads rubrics from <dir>/<level>.json. Each file is loaded
// once and cached.
func NewFileProvider(dir string) Provider {
	return &fileProvider{
		dir:     dir,
		configs: make(map[string]*model.AssessmentConfig),
	}
}

type fileProvider struct {
	dir string

	mu      sync.Mutex
	configs map[string]*model.AssessmentConfig
}

func (p *fileProvider) Get(level string) (*model.AssessmentConfig, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cfg, found := p.configs[level]; found {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(p.dir, level+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
		}
		return nil, fmt.Errorf("error reading rubric for level %s: %w", level, err)
	}

	var cfg model.AssessmentConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing rubric for level %s: %w", level, err)
	}
	if cfg.Level == "" {
		cfg.Level = level
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("rubric for level %s has no topics", level)
	}

	p.configs[level] = &cfg
	return &cfg, nil
}

func (p *fileProvider) Invalidate() {
	p.mu.Lock()
	p.configs = make(map[string]*model.AssessmentConfig)
	p.mu.Unlock()
}

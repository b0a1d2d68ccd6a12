package bench

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Run describes one workload: which implementation, how many keys,
// which seed and how many times to repeat it. Trial i uses Seed+i.
type Run struct {
	Impl   string `yaml:"impl"`
	Size   int    `yaml:"size"`
	Seed   int64  `yaml:"seed"`
	Trials int    `yaml:"trials,omitempty"`
}

// Plan is a list of runs plus how many trials may run at once.
// In YAML:
//
//	workers: 4
//	runs:
//	  - impl: avl
//	    size: 100000
//	    seed: 1
//	    trials: 3
//	  - impl: btree
//	    size: 100000
//	    seed: 1
type Plan struct {
	Workers int   `yaml:"workers,omitempty"`
	Runs    []Run `yaml:"runs"`
}

var errEmptyPlan = errors.New("plan has no runs")

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	p, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	return p, nil
}

// ParsePlan decodes a YAML plan, fills in defaults and validates it.
// Unknown fields are rejected.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := p.normalize(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Marshal encodes the plan back to YAML.
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

func (p *Plan) normalize() error {
	if len(p.Runs) == 0 {
		return errEmptyPlan
	}
	if p.Workers <= 0 {
		p.Workers = 1
	}
	for i := range p.Runs {
		if err := p.Runs[i].normalize(); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}

func (r *Run) normalize() error {
	if _, ok := registry[r.Impl]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownImpl, r.Impl)
	}
	if r.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", r.Size)
	}
	if r.Trials <= 0 {
		r.Trials = 1
	}
	return nil
}

package tree

import (
	"github.com/willbeason/tree-sketch/pkg/geometry"
)

// A Forest owns the trees currently on screen. Regenerate replaces them
// wholesale; nothing from a previous generation survives.
type Forest struct {
	cfg    Config
	source Source
	trees  []*Node
}

func NewForest(cfg Config, source Source) *Forest {
	f := &Forest{source: source}
	f.Regenerate(cfg)
	return f
}

// Regenerate grows a fresh tree from cfg, discarding the current ones.
func (f *Forest) Regenerate(cfg Config) {
	f.cfg = cfg
	f.trees = []*Node{Generate(cfg, f.source)}
}

func (f *Forest) Config() Config {
	return f.cfg
}

func (f *Forest) Trees() []*Node {
	return f.trees
}

// Draw renders every tree growing up from origin.
func (f *Forest) Draw(s Surface, origin geometry.XY) {
	debug := f.cfg.DebugColor
	if !f.cfg.Debug {
		debug = nil
	}

	for _, t := range f.trees {
		t.Draw(s, origin, Up, debug)
	}
}

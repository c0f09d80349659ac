package tree

import (
	"image/color"
	"math"
)

// Source supplies uniform random numbers in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Config holds everything Generate needs. It is passed by value so a tree is
// a function of the Config and the Source alone.
type Config struct {
	// ProbNext is the chance that a node continues into further branches
	// rather than ending in leaves.
	ProbNext float64
	// ProbBranch is the chance of each additional sibling branch.
	ProbBranch float64
	// MaxDepth is the deepest generation that may still branch.
	MaxDepth int

	MinBranchSize, MaxBranchSize     float64
	MinBranchLength, MaxBranchLength float64

	MinLeaves, MaxLeaves float64
	LeafSize, LeafLength float64

	// BranchAngleVariance and LeafAngleVariance bound the random turn, in
	// radians, either side of the parent's heading.
	BranchAngleVariance float64
	LeafAngleVariance   float64

	BranchColor color.Color
	LeafColor   color.Color

	// DebugColor is used to draw segment centerlines when Debug is set.
	Debug      bool
	DebugColor color.Color
}

// Generate grows a new tree.
func Generate(cfg Config, r Source) *Node {
	return generate(cfg, r, 0)
}

func uniform(r Source, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

func generate(cfg Config, r Source, depth int) *Node {
	angle := uniform(r, -cfg.BranchAngleVariance, cfg.BranchAngleVariance)

	var children []*Node

	hasNext := r.Float64() < cfg.ProbNext
	if depth < cfg.MaxDepth && hasNext {
		fork := r.Float64() < cfg.ProbBranch
		for fork {
			fork = r.Float64() < cfg.ProbBranch
			children = append(children, generate(cfg, r, depth+1))
		}

		children = append(children, generate(cfg, r, depth+1))
	} else {
		nLeaves := leafCount(uniform(r, cfg.MinLeaves, cfg.MaxLeaves))
		children = make([]*Node, 0, nLeaves)

		for range nLeaves {
			leafAngle := uniform(r, -cfg.LeafAngleVariance, cfg.LeafAngleVariance)
			children = append(children, NewLeaf(leafAngle, cfg.LeafLength, cfg.LeafSize, cfg.LeafColor))
		}
	}

	result := NewBranch(angle, 0, 0, cfg.BranchColor, children)

	t := growth(cfg.MaxDepth, result.Depth())
	result.Size = lerp(cfg.MinBranchSize, cfg.MaxBranchSize, t)
	result.Length = lerp(cfg.MinBranchLength, cfg.MaxBranchLength, t)

	return result
}

// leafCount is the number of integers i with 0 <= i < n. Bounds that are not
// a finite, representable count yield no leaves.
func leafCount(n float64) int {
	if !(n > 0) || n >= math.MaxInt32 {
		return 0
	}
	return int(math.Ceil(n))
}

// growth is how far along the size range a branch of the given depth sits.
// Deep branches near the root are thick and long; twigs are thin and short.
func growth(maxDepth, depth int) float64 {
	if maxDepth <= 0 {
		return 1.0
	}

	t := 1.0 - float64(maxDepth-depth)/float64(maxDepth)
	return math.Min(math.Max(t, 0.0), 1.0)
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

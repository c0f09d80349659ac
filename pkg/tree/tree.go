package tree

import (
	"image/color"
)

// Kind distinguishes the two shapes a Node can take.
type Kind uint8

const (
	// Branch nodes have a width that tapers toward their children.
	Branch Kind = iota
	// Leaf nodes are terminal and render as a lens around their midpoint.
	Leaf
)

func (k Kind) String() string {
	switch k {
	case Branch:
		return "branch"
	case Leaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// A Node is one segment of a generated tree.
//
// The recursive structure mimics the rendered structure: each child starts
// where its parent ends, turned by the child's Angle.
type Node struct {
	Kind Kind

	// Angle is the turn from the parent's heading, in radians.
	// Positive angles turn clockwise on screen, where y points down.
	Angle float64

	// Length is the distance from the segment's start to its end.
	Length float64

	// Size is the width of the segment.
	Size float64

	Color color.Color

	// Children is empty for leaves.
	Children []*Node

	depth int
}

// NewBranch builds a branch over children. Its depth is fixed here and is not
// updated if Children is later modified.
func NewBranch(angle, length, size float64, c color.Color, children []*Node) *Node {
	depth := 0
	for _, child := range children {
		depth = max(depth, child.Depth())
	}

	return &Node{
		Kind:     Branch,
		Angle:    angle,
		Length:   length,
		Size:     size,
		Color:    c,
		Children: children,
		depth:    depth + 1,
	}
}

func NewLeaf(angle, length, size float64, c color.Color) *Node {
	return &Node{
		Kind:   Leaf,
		Angle:  angle,
		Length: length,
		Size:   size,
		Color:  c,
		depth:  1,
	}
}

// Depth is the number of nodes on the longest path from n down to a leaf,
// counting n itself. Leaves have depth 1.
func (n *Node) Depth() int {
	if n.Kind == Leaf {
		return 1
	}
	return n.depth
}

// Walk visits n and everything below it in pre-order. level is 0 for n.
func (n *Node) Walk(fn func(node *Node, level int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, level int), level int) {
	fn(n, level)
	for _, child := range n.Children {
		child.walk(fn, level+1)
	}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Branches int
	Leaves   int

	// MaxBranchLevel is the largest number of edges between the root and
	// any branch below it.
	MaxBranchLevel int
}

func (n *Node) Stats() Stats {
	var s Stats
	n.Walk(func(node *Node, level int) {
		switch node.Kind {
		case Branch:
			s.Branches++
			s.MaxBranchLevel = max(s.MaxBranchLevel, level)
		case Leaf:
			s.Leaves++
		}
	})
	return s
}

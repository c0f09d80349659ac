package params

import (
	"math"
	"strings"

	"github.com/spf13/pflag"
)

// A Knob is one numeric parameter, addressable by name.
type Knob struct {
	// Name is the key used in params files. Flags use the same name with
	// dashes, environment variables the upper-cased name after EnvPrefix.
	Name  string
	Usage string

	// Integer knobs round when set.
	Integer bool

	get func(p *Params) float64
	set func(p *Params, v float64)
}

func (k Knob) Get(p *Params) float64 {
	return k.get(p)
}

func (k Knob) Set(p *Params, v float64) {
	if k.Integer {
		v = math.Round(v)
	}
	k.set(p, v)
}

func (k Knob) Flag() string {
	return strings.ReplaceAll(k.Name, "_", "-")
}

func float(name, usage string, field func(p *Params) *float64) Knob {
	return Knob{
		Name:  name,
		Usage: usage,
		get:   func(p *Params) float64 { return *field(p) },
		set:   func(p *Params, v float64) { *field(p) = v },
	}
}

// Knobs lists the numeric parameters in display order.
var Knobs = []Knob{
	float("prob_next", "chance a branch continues instead of ending in leaves",
		func(p *Params) *float64 { return &p.ProbNext }),
	float("prob_branch", "chance of each extra sibling branch",
		func(p *Params) *float64 { return &p.ProbBranch }),
	{
		Name:    "max_depth",
		Usage:   "deepest generation that may still branch",
		Integer: true,
		get:     func(p *Params) float64 { return float64(p.MaxDepth) },
		set:     func(p *Params, v float64) { p.MaxDepth = int(v) },
	},
	float("max_branch_size", "width of the thickest branches",
		func(p *Params) *float64 { return &p.MaxBranchSize }),
	float("min_branch_size", "width of the thinnest branches",
		func(p *Params) *float64 { return &p.MinBranchSize }),
	float("max_branch_length", "length of the longest branches",
		func(p *Params) *float64 { return &p.MaxBranchLength }),
	float("min_branch_length", "length of the shortest branches",
		func(p *Params) *float64 { return &p.MinBranchLength }),
	float("min_num_leafs", "lower bound on leaves at a branch tip",
		func(p *Params) *float64 { return &p.MinNumLeafs }),
	float("max_num_leafs", "upper bound on leaves at a branch tip",
		func(p *Params) *float64 { return &p.MaxNumLeafs }),
	float("leaf_size", "leaf width",
		func(p *Params) *float64 { return &p.LeafSize }),
	float("leaf_length", "leaf length",
		func(p *Params) *float64 { return &p.LeafLength }),
	float("var_branch_angle", "largest branch turn in radians",
		func(p *Params) *float64 { return &p.VarBranchAngle }),
	float("var_leaf_angle", "largest leaf turn in radians",
		func(p *Params) *float64 { return &p.VarLeafAngle }),
}

// BindFlags registers a flag per parameter on fs, defaulting to p.
func BindFlags(fs *pflag.FlagSet, p Params) {
	for _, k := range Knobs {
		if k.Integer {
			fs.Int(k.Flag(), int(k.Get(&p)), k.Usage)
		} else {
			fs.Float64(k.Flag(), k.Get(&p), k.Usage)
		}
	}

	fs.Bool("debug", p.Debug, "draw segment centerlines")
	for _, c := range colors(&p) {
		fs.String(strings.ReplaceAll(c.name, "_", "-"), *c.value, "hex "+strings.ReplaceAll(c.name, "_", " "))
	}
}

// ApplyFlags copies the flags the user set on the command line onto p, so
// they take precedence over files and the environment.
func ApplyFlags(fs *pflag.FlagSet, p *Params) error {
	for _, k := range Knobs {
		if !fs.Changed(k.Flag()) {
			continue
		}

		if k.Integer {
			v, err := fs.GetInt(k.Flag())
			if err != nil {
				return err
			}
			k.Set(p, float64(v))
		} else {
			v, err := fs.GetFloat64(k.Flag())
			if err != nil {
				return err
			}
			k.Set(p, v)
		}
	}

	if fs.Changed("debug") {
		v, err := fs.GetBool("debug")
		if err != nil {
			return err
		}
		p.Debug = v
	}

	for _, c := range colors(p) {
		name := strings.ReplaceAll(c.name, "_", "-")
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*c.value = v
	}

	return nil
}

// A Slider moves one knob within a fixed range.
type Slider struct {
	Knob
	Min, Max, Step float64
}

// Sliders span half to double each knob's value in p, in hundredths of it.
// Integer knobs move at least one unit at a time.
func Sliders(p Params) []Slider {
	sliders := make([]Slider, len(Knobs))
	for i, k := range Knobs {
		v := k.Get(&p)
		lo, hi := v/2, v*2
		if hi < lo {
			lo, hi = hi, lo
		}
		step := math.Abs(v) / 100
		switch {
		case k.Integer:
			step = math.Max(1, math.Round(step))
		case step == 0:
			step = 0.01
		}
		sliders[i] = Slider{Knob: k, Min: lo, Max: hi, Step: step}
	}
	return sliders
}

// Nudge moves the slider by steps and returns the new value.
func (s Slider) Nudge(p *Params, steps int) float64 {
	v := s.Get(p) + float64(steps)*s.Step
	v = math.Min(math.Max(v, s.Min), s.Max)
	s.Set(p, v)
	return s.Get(p)
}

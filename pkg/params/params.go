package params

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/willbeason/tree-sketch/pkg/tree"
)

var (
	// ErrUnbounded marks settings under which generation never finishes.
	ErrUnbounded = errors.New("generation never terminates")

	// ErrNonFinite marks infinite or NaN settings.
	ErrNonFinite = errors.New("not a finite number")

	// ErrTooLarge marks settings that finish on average, but only after
	// growing more than MaxExpectedBranches branches.
	ErrTooLarge = errors.New("tree too large to draw interactively")
)

// MaxExpectedBranches bounds ExpectedBranches before Validate reports
// ErrTooLarge.
const MaxExpectedBranches = 1e6

// Fatal reports whether err from Validate means a tree must not be generated
// at all.
func Fatal(err error) bool {
	return errors.Is(err, ErrUnbounded) || errors.Is(err, ErrNonFinite)
}

// EnvPrefix prefixes environment variables overriding parameters, as in
// TREE_MAX_DEPTH=8.
const EnvPrefix = "TREE_"

// Params are the user-facing knobs of the sketch.
type Params struct {
	Debug bool `yaml:"debug" toml:"debug"`

	ProbNext   float64 `yaml:"prob_next" toml:"prob_next"`
	ProbBranch float64 `yaml:"prob_branch" toml:"prob_branch"`
	MaxDepth   int     `yaml:"max_depth" toml:"max_depth"`

	MaxBranchSize float64 `yaml:"max_branch_size" toml:"max_branch_size"`
	MinBranchSize float64 `yaml:"min_branch_size" toml:"min_branch_size"`

	MaxBranchLength float64 `yaml:"max_branch_length" toml:"max_branch_length"`
	MinBranchLength float64 `yaml:"min_branch_length" toml:"min_branch_length"`

	MinNumLeafs float64 `yaml:"min_num_leafs" toml:"min_num_leafs"`
	MaxNumLeafs float64 `yaml:"max_num_leafs" toml:"max_num_leafs"`

	LeafSize   float64 `yaml:"leaf_size" toml:"leaf_size"`
	LeafLength float64 `yaml:"leaf_length" toml:"leaf_length"`

	VarBranchAngle float64 `yaml:"var_branch_angle" toml:"var_branch_angle"`
	VarLeafAngle   float64 `yaml:"var_leaf_angle" toml:"var_leaf_angle"`

	ColorBranch string `yaml:"color_branch" toml:"color_branch"`
	ColorLeaf   string `yaml:"color_leaf" toml:"color_leaf"`
	ColorDebug  string `yaml:"color_debug" toml:"color_debug"`
}

func Default() Params {
	return Params{
		Debug: true,

		ProbNext:   0.80,
		ProbBranch: 0.3,
		MaxDepth:   20,

		MaxBranchSize: 30,
		MinBranchSize: 5,

		MaxBranchLength: 50,
		MinBranchLength: 10,

		MinNumLeafs: 1,
		MaxNumLeafs: 3,

		LeafSize:   30,
		LeafLength: 30,

		VarBranchAngle: math.Pi / 15,
		VarLeafAngle:   math.Pi / 2,

		ColorBranch: "#9C2C77",
		ColorLeaf:   "#FD841F",
		ColorDebug:  "#ff4040",
	}
}

// Load starts from Default, applies the file at path if there is one, then
// environment overrides. A missing file is not an error.
func Load(path string) (Params, error) {
	p := Default()

	if path != "" {
		if err := loadFile(path, &p); err != nil {
			return p, fmt.Errorf("load params file: %w", err)
		}
	}

	if err := loadEnv(&p); err != nil {
		return p, fmt.Errorf("load params from environment: %w", err)
	}

	return p, nil
}

func loadFile(path string, p *Params) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, p)
	default:
		err = yaml.Unmarshal(data, p)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func loadEnv(p *Params) error {
	var errs []error

	for _, k := range Knobs {
		v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(k.Name))
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, strings.ToUpper(k.Name), err))
			continue
		}
		k.Set(p, f)
	}

	if v, ok := os.LookupEnv(EnvPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sDEBUG: %w", EnvPrefix, err))
		} else {
			p.Debug = b
		}
	}

	for _, c := range colors(p) {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(c.name)); ok {
			*c.value = v
		}
	}

	return errors.Join(errs...)
}

type colorParam struct {
	name  string
	value *string
}

func colors(p *Params) []colorParam {
	return []colorParam{
		{name: "color_branch", value: &p.ColorBranch},
		{name: "color_leaf", value: &p.ColorLeaf},
		{name: "color_debug", value: &p.ColorDebug},
	}
}

// Validate reports every setting that will produce a degenerate tree. The
// sketch still renders with invalid parameters, so callers usually only warn.
func (p Params) Validate() error {
	var errs []error

	for _, k := range Knobs {
		if v := k.Get(&p); math.IsInf(v, 0) || math.IsNaN(v) {
			errs = append(errs, fmt.Errorf("%s = %v: %w", k.Name, v, ErrNonFinite))
		}
	}

	for _, prob := range []struct {
		name  string
		value float64
	}{
		{"prob_next", p.ProbNext},
		{"prob_branch", p.ProbBranch},
	} {
		if prob.value < 0 || prob.value > 1 {
			errs = append(errs, fmt.Errorf("%s = %v is outside [0, 1]", prob.name, prob.value))
		}
	}

	if p.ProbBranch >= 1 {
		errs = append(errs, fmt.Errorf("prob_branch = %v: %w", p.ProbBranch, ErrUnbounded))
	} else if n := p.ExpectedBranches(); n > MaxExpectedBranches {
		errs = append(errs, fmt.Errorf("about %.3g branches expected: %w", n, ErrTooLarge))
	}

	for _, r := range []struct {
		name     string
		min, max float64
	}{
		{"branch_size", p.MinBranchSize, p.MaxBranchSize},
		{"branch_length", p.MinBranchLength, p.MaxBranchLength},
		{"num_leafs", p.MinNumLeafs, p.MaxNumLeafs},
	} {
		if r.min > r.max {
			errs = append(errs, fmt.Errorf("min_%s = %v exceeds max_%s = %v", r.name, r.min, r.name, r.max))
		}
		if r.min < 0 {
			errs = append(errs, fmt.Errorf("min_%s = %v is negative", r.name, r.min))
		}
	}

	if p.LeafSize < 0 {
		errs = append(errs, fmt.Errorf("leaf_size = %v is negative", p.LeafSize))
	}

	for _, c := range colors(&p) {
		if !validHex(*c.value) {
			errs = append(errs, fmt.Errorf("%s = %q is not a hex color", c.name, *c.value))
		}
	}

	return errors.Join(errs...)
}

// ExpectedBranches is the mean number of branches Generate grows. Every
// branch above max_depth has prob_next/(1-prob_branch) children on average.
// It is +Inf when prob_branch >= 1.
func (p Params) ExpectedBranches() float64 {
	if p.ProbBranch >= 1 {
		return math.Inf(1)
	}

	children := math.Max(p.ProbNext, 0) / (1 - math.Max(p.ProbBranch, 0))

	total, generation := 0.0, 1.0
	for range max(p.MaxDepth, 0) + 1 {
		total += generation
		if total > MaxExpectedBranches {
			break
		}
		generation *= children
	}
	return total
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	_, err := strconv.ParseUint(s, 16, 64)
	return err == nil
}

// Config resolves the parameters into generator input.
func (p Params) Config() tree.Config {
	return tree.Config{
		ProbNext:            p.ProbNext,
		ProbBranch:          p.ProbBranch,
		MaxDepth:            p.MaxDepth,
		MinBranchSize:       p.MinBranchSize,
		MaxBranchSize:       p.MaxBranchSize,
		MinBranchLength:     p.MinBranchLength,
		MaxBranchLength:     p.MaxBranchLength,
		MinLeaves:           p.MinNumLeafs,
		MaxLeaves:           p.MaxNumLeafs,
		LeafSize:            p.LeafSize,
		LeafLength:          p.LeafLength,
		BranchAngleVariance: p.VarBranchAngle,
		LeafAngleVariance:   p.VarLeafAngle,
		BranchColor:         gg.Hex(p.ColorBranch).Color(),
		LeafColor:           gg.Hex(p.ColorLeaf).Color(),
		Debug:               p.Debug,
		DebugColor:          gg.Hex(p.ColorDebug).Color(),
	}
}

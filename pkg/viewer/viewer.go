// Package viewer shows a live tree in a window and regenerates it whenever a
// parameter changes.
//
// Keys:
//
//	up / down     select a parameter
//	left / right  move it one step (ten with shift)
//	d             toggle the debug overlay
//	b / l / o     cycle the branch, leaf and debug colors
//	r, space      regrow with the same parameters
package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/willbeason/tree-sketch/pkg/params"
	"github.com/willbeason/tree-sketch/pkg/tree"
)

const (
	labelPaddingX = 15
	labelPaddingY = 10
	labelSpacing  = 16
	labelValueX   = 200

	// fadeSeconds is how long a new tree takes to fade in.
	fadeSeconds = 0.6
)

// colorKeys maps each key to the color parameter it cycles.
var colorKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyB, "color_branch"},
	{ebiten.KeyL, "color_leaf"},
	{ebiten.KeyO, "color_debug"},
}

// Options configure a Viewer.
type Options struct {
	Width, Height int
	Title         string
	Source        tree.Source
	Logger        *slog.Logger
}

// Viewer implements ebiten.Game.
type Viewer struct {
	opts Options

	params   params.Params
	sliders  []params.Slider
	selected int

	forest *tree.Forest

	canvas *ebiten.Image
	fade   *gween.Tween
	alpha  float32
}

func New(p params.Params, opts Options) *Viewer {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	v := &Viewer{
		opts:    opts,
		params:  p,
		sliders: params.Sliders(p),
		forest:  tree.NewForest(p.Config(), opts.Source),
	}
	v.startFade()
	v.logTree()

	return v
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.opts.Width, v.opts.Height)
	ebiten.SetWindowTitle(v.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(v)
}

func (v *Viewer) Update() error {
	next := v.params
	changed := false

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.selected = (v.selected + len(v.sliders) - 1) % len(v.sliders)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.selected = (v.selected + 1) % len(v.sliders)
	}

	steps := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		steps = 10
	}

	switch {
	case repeating(ebiten.KeyArrowRight):
		v.sliders[v.selected].Nudge(&next, steps)
		changed = true
	case repeating(ebiten.KeyArrowLeft):
		v.sliders[v.selected].Nudge(&next, -steps)
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		next.Debug = !next.Debug
		changed = true
	}

	for _, c := range colorKeys {
		if inpututil.IsKeyJustPressed(c.key) {
			if _, err := next.CycleColor(c.name); err != nil {
				return err
			}
			changed = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		changed = true
	}

	if changed {
		v.apply(next)
	}

	if v.fade != nil {
		alpha, done := v.fade.Update(1 / float32(ebiten.TPS()))
		v.alpha = alpha
		if done {
			v.fade = nil
		}
	}

	return nil
}

// repeating is true on the first tick a key is held and then every few ticks.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 15 && d%3 == 0)
}

// apply regrows the forest from next. Parameters that would never finish
// growing, or would grow too large to redraw every frame, are refused and the
// current ones kept.
func (v *Viewer) apply(next params.Params) bool {
	if err := next.Validate(); err != nil {
		v.opts.Logger.Warn("invalid parameters", "error", err)
		if params.Fatal(err) || errors.Is(err, params.ErrTooLarge) {
			return false
		}
	}

	v.params = next
	v.forest.Regenerate(v.params.Config())
	v.startFade()
	v.logTree()

	return true
}

func (v *Viewer) startFade() {
	v.alpha = 0
	v.fade = gween.New(0, 1, fadeSeconds, ease.OutCubic)
}

func (v *Viewer) logTree() {
	stats := v.forest.Trees()[0].Stats()
	v.opts.Logger.Debug("regenerated tree",
		"branches", stats.Branches,
		"leaves", stats.Leaves,
		"levels", stats.MaxBranchLevel)
}

func (v *Viewer) Draw(dst *ebiten.Image) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if v.canvas == nil || v.canvas.Bounds().Dx() != w || v.canvas.Bounds().Dy() != h {
		if v.canvas != nil {
			v.canvas.Deallocate()
		}
		v.canvas = ebiten.NewImage(w, h)
	}

	v.canvas.Clear()
	v.forest.Draw(&screen{dst: v.canvas}, tree.Origin(w, h))

	dst.Fill(color.White)
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(v.alpha)
	dst.DrawImage(v.canvas, op)

	v.drawLabels(dst)
}

func (v *Viewer) drawLabels(dst *ebiten.Image) {
	for i, s := range v.sliders {
		marker := "  "
		if i == v.selected {
			marker = "> "
		}

		y := labelPaddingY + i*labelSpacing
		ebitenutil.DebugPrintAt(dst, marker+s.Name, labelPaddingX, y)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%.3f", s.Get(&v.params)), labelPaddingX+labelValueX, y)
	}

	y := labelPaddingY + len(v.sliders)*labelSpacing
	ebitenutil.DebugPrintAt(dst, "  debug", labelPaddingX, y)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%t", v.params.Debug), labelPaddingX+labelValueX, y)

	for _, c := range colorKeys {
		y += labelSpacing
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("  %s (%s)", c.name, c.key), labelPaddingX, y)
		ebitenutil.DebugPrintAt(dst, v.params.Color(c.name), labelPaddingX+labelValueX, y)
	}

	w := dst.Bounds().Dx()
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), w-60-labelPaddingX, labelPaddingY)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

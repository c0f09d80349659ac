package main

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/tree-sketch/pkg/canvas"
	"github.com/willbeason/tree-sketch/pkg/logs"
	"github.com/willbeason/tree-sketch/pkg/params"
	"github.com/willbeason/tree-sketch/pkg/tree"
)

const (
	paramsFlag  = "params"
	seedFlag    = "seed"
	widthFlag   = "width"
	heightFlag  = "height"
	outFlag     = "out"
	verboseFlag = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow one random tree and write it as PNG or SVG",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().String(paramsFlag, "", "YAML or TOML file of tree parameters")
	cmd.Flags().Int64(seedFlag, 0, "random seed; 0 picks one from the clock")
	cmd.Flags().Int(widthFlag, 1280, "image width in pixels")
	cmd.Flags().Int(heightFlag, 800, "image height in pixels")
	cmd.Flags().StringP(outFlag, "o", "", "output file, .png or .svg (default tree-<time>.png)")
	cmd.Flags().BoolP(verboseFlag, "v", false, "log debug output")
	params.BindFlags(cmd.Flags(), params.Default())

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	verbose, _ := flags.GetBool(verboseFlag)
	logger := logs.New(os.Stderr, verbose)

	paramsPath, _ := flags.GetString(paramsFlag)
	p, err := params.Load(paramsPath)
	if err != nil {
		return err
	}
	if err = params.ApplyFlags(flags, &p); err != nil {
		return err
	}
	if err = p.Validate(); err != nil {
		if params.Fatal(err) {
			return err
		}
		logger.Warn("invalid parameters", "error", err)
	}

	seed, _ := flags.GetInt64(seedFlag)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	forest := tree.NewForest(p.Config(), r)
	stats := forest.Trees()[0].Stats()
	logger.Info("generated tree",
		"seed", seed,
		"branches", stats.Branches,
		"leaves", stats.Leaves,
		"levels", stats.MaxBranchLevel)

	width, _ := flags.GetInt(widthFlag)
	height, _ := flags.GetInt(heightFlag)
	out, _ := flags.GetString(outFlag)
	if out == "" {
		out = fmt.Sprintf("tree-%s.png", time.Now().Format("20060102150405"))
	}

	if err = write(out, forest, width, height); err != nil {
		return err
	}

	logger.Info("wrote tree", "path", out, "width", width, "height", height)
	return nil
}

func write(path string, forest *tree.Forest, width, height int) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".svg" {
		return fmt.Errorf("unsupported output format %q, want .png or .svg", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	origin := tree.Origin(width, height)

	if ext == ".svg" {
		s := canvas.NewSVG(f)
		s.Begin(width, height, "tree", color.White)
		forest.Draw(s, origin)
		s.End()
		return nil
	}

	r := canvas.NewRaster(width, height, color.White)
	defer r.Close()

	forest.Draw(r, origin)
	if err = r.EncodePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/tree-sketch/pkg/logs"
	"github.com/willbeason/tree-sketch/pkg/params"
	"github.com/willbeason/tree-sketch/pkg/viewer"
)

const (
	paramsFlag  = "params"
	seedFlag    = "seed"
	widthFlag   = "width"
	heightFlag  = "height"
	verboseFlag = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sketch",
		Short: "Show a live tree and regrow it as parameters change",
		Long: `Show a live tree and regrow it as parameters change.

Arrow keys up and down select a parameter, left and right move it (hold shift
for bigger steps). D toggles the debug overlay, R or space regrows the tree.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	cmd.Flags().String(paramsFlag, "", "YAML or TOML file of tree parameters")
	cmd.Flags().Int64(seedFlag, 0, "random seed; 0 picks one from the clock")
	cmd.Flags().Int(widthFlag, 1280, "window width")
	cmd.Flags().Int(heightFlag, 800, "window height")
	cmd.Flags().BoolP(verboseFlag, "v", false, "log every regeneration")
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
		// A tree that takes too long to grow would freeze the window.
		if params.Fatal(err) || errors.Is(err, params.ErrTooLarge) {
			return err
		}
		logger.Warn("invalid parameters", "error", err)
	}

	seed, _ := flags.GetInt64(seedFlag)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting sketch", "seed", seed)

	width, _ := flags.GetInt(widthFlag)
	height, _ := flags.GetInt(heightFlag)

	v := viewer.New(p, viewer.Options{
		Width:  width,
		Height: height,
		Title:  "tree sketch",
		Source: rand.New(rand.NewSource(seed)),
		Logger: logger,
	})

	return v.Run()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

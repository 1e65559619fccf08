// Package main builds a rapidly exploring random tree and renders it to a PNG image.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.viam.com/utils"

	"go.viam.com/rrt/logging"
	"go.viam.com/rrt/motionplan"
)

const (
	// Flags.
	flagConfig      = "config"
	flagWidth       = "width"
	flagHeight      = "height"
	flagStart       = "start"
	flagStep        = "step"
	flagIterations  = "iterations"
	flagSeed        = "seed"
	flagOut         = "out"
	flagStream      = "stream"
	flagDelay       = "delay"
	flagPrint       = "print"
	flagDepthColors = "depth-colors"
	flagLogLevel    = "log-level"

	defaultWidth  = 640
	defaultHeight = 480
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "cmd-rrt",
		Usage: "grow a rapidly exploring random tree and draw it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load the tree configuration from `FILE` instead of the window sized default",
			},
			&cli.IntFlag{
				Name:  flagWidth,
				Value: defaultWidth,
				Usage: "image width, and domain width when no config file is given",
			},
			&cli.IntFlag{
				Name:  flagHeight,
				Value: defaultHeight,
				Usage: "image height, and domain height when no config file is given",
			},
			&cli.Float64SliceFlag{
				Name:  flagStart,
				Usage: "start configuration, defaults to the center of the domain",
			},
			&cli.Float64Flag{
				Name:  flagStep,
				Usage: "distance advanced by each growth step",
			},
			&cli.IntFlag{
				Name:  flagIterations,
				Usage: "number of growth steps",
			},
			&cli.Int64Flag{
				Name:  flagSeed,
				Usage: "random seed",
			},
			&cli.StringFlag{
				Name:  flagOut,
				Value: "rrt.png",
				Usage: "write the rendered tree to `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagStream,
				Usage: "grow one step at a time, drawing each edge as it is created; cannot be combined with --" + flagDepthColors,
			},
			&cli.DurationFlag{
				Name:  flagDelay,
				Value: 0,
				Usage: "pause between steps when streaming",
			},
			&cli.BoolFlag{
				Name:  flagPrint,
				Usage: "print every node as a table",
			},
			&cli.BoolFlag{
				Name:  flagDepthColors,
				Usage: "shade edges by their depth in the finished tree",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "info",
				Usage: "log `LEVEL`: debug, info, warn or error",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return err
	}
	logger := logging.NewLogger("cmd-rrt")
	logger.SetLevel(level)

	// The depth range is only known once growth is over.
	if c.Bool(flagStream) && c.Bool(flagDepthColors) {
		return errors.Errorf("--%s cannot be combined with --%s", flagDepthColors, flagStream)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	start := c.Float64Slice(flagStart)
	if len(start) == 0 {
		start = domainCenter(cfg.Domain)
	}

	tree, err := motionplan.NewTree(start, cfg, nil, logger.Sublogger("rrt"))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
	defer cancel()

	began := time.Now()
	var canvas *treeCanvas
	var buildErr error
	if c.Bool(flagStream) {
		canvas, buildErr = streamTree(ctx, tree, c.Int(flagWidth), c.Int(flagHeight), c.Duration(flagDelay), logger)
	} else {
		buildErr = tree.BuildContext(ctx)
		canvas, err = drawTree(tree, c.Int(flagWidth), c.Int(flagHeight), c.Bool(flagDepthColors))
	}
	if err != nil {
		return err
	}
	logger.Infow("tree grown", "nodes", tree.Len(), "took", time.Since(began).String())

	// A partial tree is still drawn when growth stopped early.
	if canvas != nil {
		canvas.drawCaption(tree)
		out := c.String(flagOut)
		if err := canvas.dc.SavePNG(out); err != nil {
			return errors.Wrapf(err, "cannot write %s", out)
		}
		logger.Infof("wrote %s", out)
	}
	if c.Bool(flagPrint) {
		fmt.Fprintln(c.App.Writer, treeTable(tree))
	}
	return buildErr
}

// loadConfig reads the optional config file and applies any flags set on the command line.
func loadConfig(c *cli.Context) (*motionplan.Config, error) {
	var cfg *motionplan.Config
	if path := c.String(flagConfig); path != "" {
		//nolint:gosec
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		attributes := map[string]interface{}{}
		if err := json.Unmarshal(content, &attributes); err != nil {
			return nil, errors.Wrapf(err, "cannot parse %s", path)
		}
		cfg, err = motionplan.NewConfigFromAttributes(attributes)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = motionplan.NewDefaultConfig(motionplan.NewScaleDomain(float64(c.Int(flagWidth)), float64(c.Int(flagHeight))))
	}

	if c.IsSet(flagStep) {
		cfg.StepSize = c.Float64(flagStep)
	}
	if c.IsSet(flagIterations) {
		iterations := c.Int(flagIterations)
		cfg.Iterations = &iterations
	}
	if c.IsSet(flagSeed) {
		cfg.RandomSeed = c.Int64(flagSeed)
	}
	return cfg, nil
}

func domainCenter(domain motionplan.Domain) []float64 {
	limits := domain.AxisLimits()
	center := make([]float64, 0, len(limits))
	for _, limit := range limits {
		center = append(center, (limit.Min+limit.Max)/2)
	}
	return center
}

// streamTree grows the tree one step at a time, drawing each new edge as soon as it exists.
func streamTree(
	ctx context.Context,
	tree *motionplan.Tree,
	width, height int,
	delay time.Duration,
	logger logging.Logger,
) (*treeCanvas, error) {
	canvas, err := newTreeCanvas(tree.Domain(), width, height)
	if err != nil {
		return nil, err
	}
	canvas.drawNode(tree.Root())

	for tree.Steps() < tree.Budget() {
		node, edge, err := tree.Step()
		if err != nil {
			return canvas, err
		}
		canvas.drawEdge(tree, edge)
		logger.Debugw("grew edge", "edge", edge.String(), "node", node.String())
		if delay > 0 && !utils.SelectContextOrWait(ctx, delay) {
			return canvas, ctx.Err()
		}
		if ctx.Err() != nil {
			return canvas, ctx.Err()
		}
	}
	return canvas, nil
}

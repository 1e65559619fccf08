package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"go.viam.com/rrt/motionplan"
	"go.viam.com/rrt/rimage"
)

const (
	nodeRadius  = 2
	edgeWidth   = 1
	borderWidth = 2
)

// treeCanvas projects the first two axes of a tree's domain onto an image and draws onto it.
// One dimensional trees are drawn along the horizontal center line.
type treeCanvas struct {
	dc       *gg.Context
	limits   []motionplan.Limit
	maxDepth int
}

func newTreeCanvas(domain motionplan.Domain, width, height int) (*treeCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("image size must be positive, got %dx%d", width, height)
	}
	limits := domain.AxisLimits()
	if len(limits) == 0 {
		return nil, errors.New("cannot draw a domain without axes")
	}
	tc := &treeCanvas{
		dc:     rimage.NewCanvas(width, height, rimage.Black),
		limits: limits,
	}
	// The domain fills the image, so its border is the image's.
	rimage.DrawRectangleEmpty(tc.dc, image.Rect(0, 0, width, height), rimage.Gray, borderWidth)
	return tc, nil
}

func project(v float64, limit motionplan.Limit, size int) float64 {
	span := limit.Max - limit.Min
	if span == 0 {
		return float64(size) / 2
	}
	return (v - limit.Min) / span * float64(size)
}

func (tc *treeCanvas) point(n motionplan.Node) gg.Point {
	x := project(n.At(0), tc.limits[0], tc.dc.Width())
	y := float64(tc.dc.Height()) / 2
	if n.Dim() > 1 {
		y = project(n.At(1), tc.limits[1], tc.dc.Height())
	}
	return gg.Point{X: x, Y: y}
}

// drawSegment draws the segment from an edge's parent to its child. Deeper edges fade from the
// edge color toward blue when the depth range is known.
func (tc *treeCanvas) drawSegment(tree *motionplan.Tree, edge motionplan.Edge) {
	edgeColor := color.Color(rimage.White)
	if tc.maxDepth > 0 {
		edgeColor = rimage.Gradient(rimage.White, rimage.Blue, float64(tree.Depth(edge.Child))/float64(tc.maxDepth))
	}
	rimage.DrawLine(tc.dc, tc.point(tree.Node(edge.Parent)), tc.point(tree.Node(edge.Child)), edgeColor, edgeWidth)
}

func (tc *treeCanvas) drawNode(n motionplan.Node) {
	rimage.DrawCircle(tc.dc, tc.point(n), nodeRadius, rimage.Red)
}

// drawEdge draws an edge and marks its child.
func (tc *treeCanvas) drawEdge(tree *motionplan.Tree, edge motionplan.Edge) {
	tc.drawSegment(tree, edge)
	tc.drawNode(tree.Node(edge.Child))
}

func (tc *treeCanvas) drawCaption(tree *motionplan.Tree) {
	caption := fmt.Sprintf("RRT  %d nodes  step %v", tree.Len(), tree.StepSize())
	rimage.DrawString(tc.dc, caption, image.Point{X: 4, Y: 4}, rimage.White, 12)
}

// drawTree renders a finished tree with every node marked on top of the edges.
func drawTree(tree *motionplan.Tree, width, height int, depthColors bool) (*treeCanvas, error) {
	tc, err := newTreeCanvas(tree.Domain(), width, height)
	if err != nil {
		return nil, err
	}
	if depthColors {
		tc.maxDepth = tree.MaxDepth()
	}
	for _, edge := range tree.Edges() {
		tc.drawSegment(tree, edge)
	}
	for _, n := range tree.Nodes() {
		tc.drawNode(n)
	}
	return tc, nil
}

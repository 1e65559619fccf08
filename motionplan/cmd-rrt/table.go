package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.viam.com/rrt/motionplan"
)

// treeTable returns a human readable table of every node with its parent and depth.
func treeTable(tree *motionplan.Tree) string {
	t := table.NewWriter()
	header := table.Row{"#", "Parent", "Depth"}
	for i := 0; i < tree.Dim(); i++ {
		header = append(header, fmt.Sprintf("q%d", i))
	}
	t.AppendHeader(header)
	for i, n := range tree.Nodes() {
		parent := ""
		if p, ok := tree.Parent(i); ok {
			parent = strconv.Itoa(p)
		}
		row := table.Row{strconv.Itoa(i), parent, strconv.Itoa(tree.Depth(i))}
		for _, v := range n.Q() {
			row = append(row, strconv.FormatFloat(v, 'f', 3, 64))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"Edges", strconv.Itoa(tree.Steps())})
	return t.Render()
}

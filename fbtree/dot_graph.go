package fbtree

import (
	"fmt"

	"github.com/emicklei/dot"
)

// RenderDotGraph renders the tree as a graphviz dot document. Edges are
// labeled "l" and "r". Node ids are positional so duplicate payloads render
// as distinct nodes.
func (t *Tree[T]) RenderDotGraph() string {
	graph := dot.NewGraph(dot.Directed)
	if t.root == nil {
		return graph.String()
	}

	seq := 0
	var traverse func(n *node[T], parent *dot.Node, direction string)
	traverse = func(n *node[T], parent *dot.Node, direction string) {
		gn := graph.Node(fmt.Sprintf("n%d", seq)).Attr("label", fmt.Sprintf("%v", n.data))
		seq++
		if parent != nil {
			parent.Edge(gn, direction)
		}
		if n.isLeaf() {
			return
		}
		traverse(n.left, &gn, "l")
		traverse(n.right, &gn, "r")
	}
	traverse(t.root, nil, "")

	return graph.String()
}

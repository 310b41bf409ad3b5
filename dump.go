package bitvector

import (
	"fmt"

	"github.com/hupe1980/dynabitvector/internal/bvtree"
	"github.com/xlab/treeprint"
)

// Dump renders the current tree shape as an indented tree, useful for
// debugging rebalancing behavior interactively or from cmd/bvctl's show
// subcommand. It is read-only and safe to call at any time.
func (bv *BitVector) Dump() string {
	shape := bv.tree.Shape()
	if shape == nil {
		return "(empty)"
	}
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("root (size=%d)", bv.tree.Size()))
	addShapeNode(tree, shape)
	return tree.String()
}

func addShapeNode(parent treeprint.Tree, n *bvtree.ShapeNode) {
	if n == nil {
		return
	}
	if n.Leaf {
		parent.AddNode(fmt.Sprintf("leaf nums=%d ones=%d", n.Nums, n.Ones))
		return
	}
	branch := parent.AddBranch(fmt.Sprintf("node h=%d nums=%d ones=%d", n.Height, n.Nums, n.Ones))
	addShapeNode(branch, n.Left)
	addShapeNode(branch, n.Right)
}

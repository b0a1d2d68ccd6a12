package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sprint returns a string representation of the tree rooted at root.
// label formats a single node; if it is nil the key is printed with
// fmt.Sprint. A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func Sprint[T constraints.Ordered, X any](root *Node[T, X], label func(*Node[T, X]) string) string {
	if root == nil {
		return ""
	}
	if label == nil {
		label = func(n *Node[T, X]) string {
			return fmt.Sprint(n.Key)
		}
	}

	var sb strings.Builder
	printvisit(&sb, root, label, "", "", true, false)
	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered, X any](
	sb *strings.Builder, n *Node[T, X], label func(*Node[T, X]) string,
	prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(label(n))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, label, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, label, prefix, treeRightBranch, false, false)
	}
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
)

// WriteDOT writes the tree rooted at root as a Graphviz digraph.
// Each node is a three-field record: the left child edge leaves from
// field f0, the key sits in f1 and the right child edge leaves from f2.
// Nodes are numbered in pre-order. Render with e.g.
//
//	dot tree.dot -Tpng -o tree.png
func WriteDOT[T constraints.Ordered, X any](w io.Writer, root *Node[T, X]) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "digraph G {\n")
	fmt.Fprint(bw, "node [shape = record,height=.1];\n")
	if root != nil {
		c := 0
		dotvisit(bw, root, &c)
	}
	fmt.Fprint(bw, "}\n")

	// bufio.Writer keeps the first write error, Flush reports it
	return bw.Flush()
}

func dotvisit[T constraints.Ordered, X any](w io.Writer, n *Node[T, X], c *int) {
	id := *c
	*c++

	fmt.Fprintf(w, "node%d[label = \"<f0> |<f1> %s|<f2> \"];\n", id, dotEscaper.Replace(fmt.Sprint(n.Key)))
	if n.Left != nil {
		fmt.Fprintf(w, "\"node%d\":f0 -> \"node%d\":f1;\n", id, *c)
		dotvisit(w, n.Left, c)
	}
	if n.Right != nil {
		fmt.Fprintf(w, "\"node%d\":f2 -> \"node%d\":f1;\n", id, *c)
		dotvisit(w, n.Right, c)
	}
}

// Package dump renders VNode trees as ASCII trees for debugging.
//
// Output looks like:
//
//	ul#menu.top
//	├── li "Home"
//	└── li.active "Docs"
package dump

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/seldom-dev/seldom/pkg/vdom"
)

// Dump returns an ASCII rendering of the node tree.
func Dump(node *vdom.VNode) string {
	if node == nil {
		return ""
	}
	root := treeprint.NewWithRoot(label(node))
	addChildren(root, node)
	return root.String()
}

func addChildren(branch treeprint.Tree, node *vdom.VNode) {
	if foldsText(node) {
		return
	}
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if len(child.Children) == 0 || foldsText(child) {
			branch.AddNode(label(child))
			continue
		}
		addChildren(branch.AddBranch(label(child)), child)
	}
}

// foldsText reports whether a node's sole text child is shown inline
// in its label instead of as a separate tree node.
func foldsText(node *vdom.VNode) bool {
	return node.Kind == vdom.KindElement &&
		len(node.Children) == 1 &&
		node.Children[0] != nil &&
		node.Children[0].Kind == vdom.KindText
}

// label produces a selector-like one-line summary of a node.
func label(node *vdom.VNode) string {
	switch node.Kind {
	case vdom.KindText:
		return fmt.Sprintf("%q", node.Text)
	case vdom.KindRaw:
		return fmt.Sprintf("raw(%d bytes)", len(node.Text))
	case vdom.KindFragment:
		return "fragment"
	}

	var b strings.Builder
	b.WriteString(node.Tag)
	if id, ok := node.Props["id"].(string); ok && id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	if class, ok := node.Props["class"].(string); ok && class != "" {
		for _, c := range strings.Fields(class) {
			b.WriteString(".")
			b.WriteString(c)
		}
	}

	// Remaining attributes, sorted, in brackets.
	var extra []string
	for key, value := range node.Props {
		if key == "id" || key == "class" {
			continue
		}
		extra = append(extra, fmt.Sprintf("%s=%v", key, value))
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		b.WriteString(" [")
		b.WriteString(strings.Join(extra, " "))
		b.WriteString("]")
	}

	// Single text child is folded into the label.
	if len(node.Children) == 1 && node.Children[0] != nil && node.Children[0].Kind == vdom.KindText {
		fmt.Fprintf(&b, " %q", node.Children[0].Text)
	}

	return b.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package treeview

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// collapseThreshold bounds the initial render of large nested arrays: any
// array with more elements starts collapsed.
const collapseThreshold = 5

// Node wraps a parsed value for display. Nodes are presentation-only and are
// rebuilt from scratch whenever the underlying value changes, so collapse
// state never survives a re-parse.
type Node struct {
	Key      string
	Path     string
	Value    *fastjson.Value
	ValueStr string
	Children []*Node
	Parent   *Node
	Depth    int

	Collapsed bool
	Matches   bool
}

// Build constructs a fresh node hierarchy for v. Every node starts at the
// default collapse rule, the root included.
func Build(v *fastjson.Value) *Node {
	root := &Node{
		Key:       "root",
		Path:      "root",
		Value:     v,
		Collapsed: DefaultCollapsed(v),
	}
	buildChildren(root, 0)
	return root
}

func buildChildren(n *Node, depth int) {
	n.Depth = depth
	switch n.Value.Type() {
	case fastjson.TypeObject:
		n.Value.GetObject().Visit(func(key []byte, val *fastjson.Value) {
			child := &Node{
				Key:       string(key),
				Path:      n.Path + "." + string(key),
				Value:     val,
				Parent:    n,
				Collapsed: DefaultCollapsed(val),
			}
			buildChildren(child, depth+1)
			n.Children = append(n.Children, child)
		})
	case fastjson.TypeArray:
		for i, val := range n.Value.GetArray() {
			child := &Node{
				Key:       fmt.Sprintf("[%d]", i),
				Path:      fmt.Sprintf("%s[%d]", n.Path, i),
				Value:     val,
				Parent:    n,
				Collapsed: DefaultCollapsed(val),
			}
			buildChildren(child, depth+1)
			n.Children = append(n.Children, child)
		}
	default:
		n.ValueStr = formatLeaf(n.Value)
	}
}

// DefaultCollapsed is the initial collapse rule, a pure function of the
// value: collapsed only for arrays longer than collapseThreshold.
func DefaultCollapsed(v *fastjson.Value) bool {
	return v.Type() == fastjson.TypeArray && len(v.GetArray()) > collapseThreshold
}

// formatLeaf renders a scalar for display. Strings keep their decoded
// content verbatim inside double quotes; everything else shows its JSON
// lexeme, so numbers keep their source form.
func formatLeaf(v *fastjson.Value) string {
	if v.Type() == fastjson.TypeString {
		return `"` + string(v.GetStringBytes()) + `"`
	}
	return string(v.MarshalTo(nil))
}

// Container reports whether the node expands into children.
func (n *Node) Container() bool {
	t := n.Value.Type()
	return t == fastjson.TypeObject || t == fastjson.TypeArray
}

// Label is the single line of text shown for the node, without the
// expand/collapse symbol or indentation.
func (n *Node) Label() string {
	if !n.Container() {
		return n.Key + ": " + n.ValueStr
	}
	if n.Value.Type() == fastjson.TypeArray {
		return fmt.Sprintf("%s [%d items]", n.Key, len(n.Children))
	}
	return n.Key
}

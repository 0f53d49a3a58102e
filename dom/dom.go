// Package dom provides a mutable HTML document tree stored as an arena.
//
// Nodes live in a single slice and are addressed by NodeID; parent and child
// relations are plain index lists. Replacing, moving and unwrapping nodes are
// therefore index-list edits. Detached nodes stay in the arena but are no
// longer reachable from the root.
package dom

import (
	"slices"
	"strings"

	"github.com/fwojciec/newsdoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeID addresses a node within a Document.
type NodeID int

// Nil is the NodeID of a missing node.
const Nil NodeID = -1

// NodeType identifies the kind of a node.
type NodeType uint8

// Node types. Comments and doctypes are dropped during conversion.
const (
	ElementNode NodeType = iota + 1
	TextNode
)

// Node is a single element or text node.
type Node struct {
	Type NodeType

	// Atom is the known tag kind of an element, or 0 for non-standard names.
	Atom atom.Atom

	// Data is the lower-cased tag name of an element or the content of a text node.
	Data string

	Attr     []html.Attribute
	Parent   NodeID
	Children []NodeID
}

// Document is an arena of nodes with a designated root.
// A Document is not safe for concurrent use.
type Document struct {
	nodes []Node
	root  NodeID
}

// New returns an empty document whose root is a new element with the given name.
func New(rootName string) *Document {
	d := &Document{}
	d.root = d.NewElement(rootName)
	return d
}

// FromNode copies the subtree rooted at n into a new Document.
func FromNode(n *html.Node) *Document {
	d := &Document{}
	d.root = d.copyNode(n, Nil)
	return d
}

func (d *Document) copyNode(n *html.Node, parent NodeID) NodeID {
	var id NodeID
	switch n.Type {
	case html.ElementNode:
		id = d.add(Node{
			Type:   ElementNode,
			Atom:   n.DataAtom,
			Data:   strings.ToLower(n.Data),
			Attr:   slices.Clone(n.Attr),
			Parent: parent,
		})
	case html.TextNode:
		return d.add(Node{Type: TextNode, Data: n.Data, Parent: parent})
	case html.DocumentNode:
		id = d.add(Node{Type: ElementNode, Data: "#document", Parent: parent})
	default:
		return Nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if cid := d.copyNode(c, id); cid != Nil {
			d.nodes[id].Children = append(d.nodes[id].Children, cid)
		}
	}
	return id
}

// add appends n to the arena. Zero is a valid NodeID, so callers always
// set Parent explicitly.
func (d *Document) add(n Node) NodeID {
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// Root returns the root node of the document.
func (d *Document) Root() NodeID { return d.root }

// Len returns the number of nodes in the arena, attached or not.
func (d *Document) Len() int { return len(d.nodes) }

// Node returns the node for id. The returned pointer is invalidated by any
// call that adds nodes to the arena.
func (d *Document) Node(id NodeID) *Node {
	return &d.nodes[id]
}

// NewElement adds a detached element to the arena.
func (d *Document) NewElement(name string, attr ...html.Attribute) NodeID {
	name = strings.ToLower(name)
	return d.add(Node{
		Type:   ElementNode,
		Atom:   atom.Lookup([]byte(name)),
		Data:   name,
		Attr:   attr,
		Parent: Nil,
	})
}

// NewText adds a detached text node to the arena.
func (d *Document) NewText(s string) NodeID {
	return d.add(Node{Type: TextNode, Data: s, Parent: Nil})
}

// IsElement reports whether id is an element.
func (d *Document) IsElement(id NodeID) bool {
	return d.nodes[id].Type == ElementNode
}

// Is reports whether id is an element of the given known kind.
func (d *Document) Is(id NodeID, a atom.Atom) bool {
	n := &d.nodes[id]
	return n.Type == ElementNode && n.Atom == a
}

// Name returns the tag name of an element, or "" for a text node.
func (d *Document) Name(id NodeID) string {
	if d.nodes[id].Type != ElementNode {
		return ""
	}
	return d.nodes[id].Data
}

// Attr returns the value of the named attribute.
func (d *Document) Attr(id NodeID, key string) (string, bool) {
	for _, a := range d.nodes[id].Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the whitespace-separated tokens of the class attribute.
func (d *Document) Classes(id NodeID) []string {
	v, _ := d.Attr(id, "class")
	return strings.Fields(v)
}

// Match reports whether id is an element selected by t.
func (d *Document) Match(id NodeID, t newsdoc.Tag) bool {
	n := &d.nodes[id]
	if n.Type != ElementNode {
		return false
	}
	return t.Matches(n.Atom, n.Data, d.Classes(id))
}

// Matcher returns a predicate selecting elements that match any of tags.
func (d *Document) Matcher(tags ...newsdoc.Tag) func(NodeID) bool {
	return func(id NodeID) bool {
		for _, t := range tags {
			if d.Match(id, t) {
				return true
			}
		}
		return false
	}
}

// Kinds returns a predicate selecting elements of any of the known kinds.
func (d *Document) Kinds(kinds ...atom.Atom) func(NodeID) bool {
	return func(id NodeID) bool {
		n := &d.nodes[id]
		return n.Type == ElementNode && n.Atom != 0 && slices.Contains(kinds, n.Atom)
	}
}

// Names returns a predicate selecting elements by raw tag name.
// Use it for non-standard tags that have no atom.
func (d *Document) Names(names ...string) func(NodeID) bool {
	return func(id NodeID) bool {
		n := &d.nodes[id]
		return n.Type == ElementNode && slices.Contains(names, n.Data)
	}
}

// Parent returns the parent of id, or Nil if detached.
func (d *Document) Parent(id NodeID) NodeID {
	return d.nodes[id].Parent
}

// Children returns a copy of the child list of id.
func (d *Document) Children(id NodeID) []NodeID {
	return slices.Clone(d.nodes[id].Children)
}

// ChildElements returns the direct children of id that satisfy match.
func (d *Document) ChildElements(id NodeID, match func(NodeID) bool) []NodeID {
	var out []NodeID
	for _, c := range d.nodes[id].Children {
		if d.nodes[c].Type == ElementNode && match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every node below id in document order, excluding id.
func (d *Document) Descendants(id NodeID) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(cur NodeID) {
		for _, c := range d.nodes[cur].Children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}

// FindAll returns the element descendants of id that satisfy match,
// in document order. The list is a snapshot: later mutations do not change it.
func (d *Document) FindAll(id NodeID, match func(NodeID) bool) []NodeID {
	var out []NodeID
	for _, c := range d.Descendants(id) {
		if d.nodes[c].Type == ElementNode && match(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindFirst returns the first element descendant of id in document order
// that satisfies match, or Nil.
func (d *Document) FindFirst(id NodeID, match func(NodeID) bool) NodeID {
	found := Nil
	var walk func(NodeID) bool
	walk = func(cur NodeID) bool {
		for _, c := range d.nodes[cur].Children {
			if d.nodes[c].Type == ElementNode && match(c) {
				found = c
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(id)
	return found
}

// Contains reports whether some element descendant of id satisfies match.
func (d *Document) Contains(id NodeID, match func(NodeID) bool) bool {
	return d.FindFirst(id, match) != Nil
}

// Text returns the concatenated content of all text nodes below id.
func (d *Document) Text(id NodeID) string {
	n := &d.nodes[id]
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	for _, c := range d.Descendants(id) {
		if d.nodes[c].Type == TextNode {
			b.WriteString(d.nodes[c].Data)
		}
	}
	return b.String()
}

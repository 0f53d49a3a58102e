package dom

import "slices"

// Detach removes id from its parent's child list. The subtree below id is
// kept intact but becomes unreachable from the root. Detaching a node that
// has no parent is a no-op.
func (d *Document) Detach(id NodeID) {
	parent := d.nodes[id].Parent
	if parent == Nil {
		return
	}
	children := d.nodes[parent].Children
	if i := slices.Index(children, id); i >= 0 {
		d.nodes[parent].Children = slices.Delete(children, i, i+1)
	}
	d.nodes[id].Parent = Nil
}

// AppendChild moves child to the end of parent's child list.
func (d *Document) AppendChild(parent, child NodeID) {
	d.Detach(child)
	d.nodes[parent].Children = append(d.nodes[parent].Children, child)
	d.nodes[child].Parent = parent
}

// InsertAfter moves id so that it directly follows ref among ref's siblings.
// It reports false and does nothing if ref is detached.
func (d *Document) InsertAfter(ref, id NodeID) bool {
	if ref == id || d.nodes[ref].Parent == Nil {
		return false
	}
	d.Detach(id)
	parent := d.nodes[ref].Parent
	children := d.nodes[parent].Children
	i := slices.Index(children, ref)
	d.nodes[parent].Children = slices.Insert(children, i+1, id)
	d.nodes[id].Parent = parent
	return true
}

// ReplaceWith puts repl in the position of id and detaches id.
// It reports false and does nothing if id is detached.
func (d *Document) ReplaceWith(id, repl NodeID) bool {
	if !d.InsertAfter(id, repl) {
		return false
	}
	d.Detach(id)
	return true
}

// Unwrap replaces id with its own children, keeping their order, and
// detaches the now empty id. It reports false and does nothing if id is
// detached.
func (d *Document) Unwrap(id NodeID) bool {
	parent := d.nodes[id].Parent
	if parent == Nil {
		return false
	}
	kids := d.nodes[id].Children
	d.nodes[id].Children = nil
	for _, c := range kids {
		d.nodes[c].Parent = parent
	}
	siblings := d.nodes[parent].Children
	i := slices.Index(siblings, id)
	siblings = slices.Replace(siblings, i, i+1, kids...)
	d.nodes[parent].Children = siblings
	d.nodes[id].Parent = Nil
	return true
}

// Remove detaches id and everything below it. Removed subtrees contribute
// nothing to later traversals.
func (d *Document) Remove(id NodeID) {
	d.Detach(id)
}

// SetRoot makes id the root of the document. Nodes outside the subtree of
// id become unreachable; id keeps its parent link so it can still be edited
// in place.
func (d *Document) SetRoot(id NodeID) {
	d.root = id
}

// IsAttached reports whether id can be reached from the document root.
func (d *Document) IsAttached(id NodeID) bool {
	return d.Within(id, d.root)
}

// Within reports whether id is ancestor or one of its descendants.
func (d *Document) Within(id, ancestor NodeID) bool {
	for cur := id; cur != Nil; cur = d.nodes[cur].Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

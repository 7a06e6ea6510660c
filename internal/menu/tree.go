package menu

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Tree is a validated, immutable menu bar. Accessors return copies.
type Tree struct {
	menus    []Node
	leaves   map[CommandID]Node
	commands []CommandID
	digest   string
}

func newTree(menus []Node) *Tree {
	t := &Tree{
		menus:  menus,
		leaves: make(map[CommandID]Node),
	}
	t.Walk(func(_ []string, n Node) {
		if n.Kind != KindLeaf {
			return
		}
		t.leaves[n.Command] = n
		t.commands = append(t.commands, n.Command)
	})
	t.digest = hashNodes(menus)
	return t
}

// Menus returns the top-level submenus in on-screen order.
func (t *Tree) Menus() []Node {
	return cloneNodes(t.menus)
}

// Lookup returns the leaf bound to id.
func (t *Tree) Lookup(id CommandID) (Node, bool) {
	n, ok := t.leaves[id]
	return n, ok
}

// Contains reports whether id is bound to a leaf of this tree.
func (t *Tree) Contains(id CommandID) bool {
	_, ok := t.leaves[id]
	return ok
}

// Commands lists every command id in on-screen order.
func (t *Tree) Commands() []CommandID {
	out := make([]CommandID, len(t.commands))
	copy(out, t.commands)
	return out
}

// Digest is a content hash of the tree; structurally identical trees share it.
func (t *Tree) Digest() string {
	return t.digest
}

// Walk visits every node depth-first in on-screen order. path holds the
// labels of the enclosing submenus.
func (t *Tree) Walk(fn func(path []string, n Node)) {
	var visit func(parents []string, nodes []Node)
	visit = func(parents []string, nodes []Node) {
		for _, n := range nodes {
			fn(parents, n)
			if n.Kind == KindSubmenu {
				visit(append(parents[:len(parents):len(parents)], n.Label), n.Children)
			}
		}
	}
	visit(nil, t.menus)
}

func hashNodes(nodes []Node) string {
	if len(nodes) == 0 {
		return ""
	}

	payload, err := json.Marshal(nodes)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

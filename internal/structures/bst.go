package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// MaxTreeSize bounds the tree visualizer so it stays drawable.
const MaxTreeSize = 31

// BSTNode is one tree node. Values are unique; the highlight map for tree
// frames is keyed by node value.
type BSTNode struct {
	Value int
	Left  *BSTNode
	Right *BSTNode
}

// TreeRenderer draws one tree frame. Highlights are keyed by node value.
type TreeRenderer interface {
	RenderTree(root *BSTNode, h step.HighlightMap)
}

// BST is a binary search tree visualizer. Insert and search animate the
// root-to-leaf path; traversal animates the in-order walk.
type BST struct {
	animator
	root   *BSTNode
	size   int
	render TreeRenderer
}

func NewBST(r TreeRenderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *BST {
	return &BST{animator: newAnimator(n, d, hold), render: r}
}

func (t *BST) Len() int       { return t.size }
func (t *BST) Root() *BSTNode { return t.root }

// Values returns the tree contents in sorted (in-order) order.
func (t *BST) Values() []int {
	out := make([]int, 0, t.size)
	var walk func(n *BSTNode)
	walk = func(n *BSTNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.root)
	return out
}

func (t *BST) draw(h step.HighlightMap) {
	if t.render != nil {
		t.render.RenderTree(t.root, h)
	}
}

// Insert walks the search path and attaches v as a new leaf. Duplicates are
// rejected without mutation.
func (t *BST) Insert(ctx context.Context, v int) error {
	if err := t.acquire(); err != nil {
		return err
	}
	defer t.gate.Release()

	if t.size >= MaxTreeSize {
		return t.reject("tree is full", ErrSizeRange)
	}

	var parent *BSTNode
	n := t.root
	for n != nil {
		t.draw(step.HighlightMap{n.Value: step.TokenVisit})
		if err := t.wait(ctx); err != nil {
			t.draw(nil)
			return err
		}
		if v == n.Value {
			t.draw(nil)
			return t.reject("value already present", ErrDuplicate)
		}
		parent = n
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	node := &BSTNode{Value: v}
	switch {
	case parent == nil:
		t.root = node
	case v < parent.Value:
		parent.Left = node
	default:
		parent.Right = node
	}
	t.size++

	t.draw(step.HighlightMap{v: step.TokenInsert})
	if err := t.wait(ctx); err != nil {
		t.draw(nil)
		return err
	}
	t.draw(nil)
	return nil
}

// Search walks the search path, leaving a match highlighted for one frame.
func (t *BST) Search(ctx context.Context, v int) (bool, error) {
	if err := t.acquire(); err != nil {
		return false, err
	}
	defer t.gate.Release()

	n := t.root
	for n != nil {
		if v == n.Value {
			t.draw(step.HighlightMap{n.Value: step.TokenDone})
			if err := t.wait(ctx); err != nil {
				t.draw(nil)
				return false, err
			}
			t.draw(nil)
			return true, nil
		}
		t.draw(step.HighlightMap{n.Value: step.TokenVisit})
		if err := t.wait(ctx); err != nil {
			t.draw(nil)
			return false, err
		}
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	t.draw(nil)
	return false, t.reject("value not found", ErrNotFound)
}

// Remove deletes v using the standard three cases, animating the search
// path first. Two-children nodes are replaced by their in-order successor.
func (t *BST) Remove(ctx context.Context, v int) error {
	if err := t.acquire(); err != nil {
		return err
	}
	defer t.gate.Release()

	n := t.root
	for n != nil && n.Value != v {
		t.draw(step.HighlightMap{n.Value: step.TokenVisit})
		if err := t.wait(ctx); err != nil {
			t.draw(nil)
			return err
		}
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	if n == nil {
		t.draw(nil)
		return t.reject("value not found", ErrNotFound)
	}

	t.draw(step.HighlightMap{n.Value: step.TokenVisit})
	if err := t.wait(ctx); err != nil {
		t.draw(nil)
		return err
	}
	t.root = removeNode(t.root, v)
	t.size--
	t.draw(nil)
	return nil
}

func removeNode(n *BSTNode, v int) *BSTNode {
	if n == nil {
		return nil
	}
	switch {
	case v < n.Value:
		n.Left = removeNode(n.Left, v)
	case v > n.Value:
		n.Right = removeNode(n.Right, v)
	default:
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}
		succ := n.Right
		for succ.Left != nil {
			succ = succ.Left
		}
		n.Value = succ.Value
		n.Right = removeNode(n.Right, succ.Value)
	}
	return n
}

// InOrder animates the in-order traversal, one frame per node.
func (t *BST) InOrder(ctx context.Context) error {
	if err := t.acquire(); err != nil {
		return err
	}
	defer t.gate.Release()

	var walk func(n *BSTNode) error
	walk = func(n *BSTNode) error {
		if n == nil {
			return nil
		}
		if err := walk(n.Left); err != nil {
			return err
		}
		t.draw(step.HighlightMap{n.Value: step.TokenVisit})
		if err := t.wait(ctx); err != nil {
			return err
		}
		return walk(n.Right)
	}
	err := walk(t.root)
	t.draw(nil)
	return err
}

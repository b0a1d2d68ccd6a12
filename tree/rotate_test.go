package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall() *Node[int, struct{}] {
	return &Node[int, struct{}]{
		Left: &Node[int, struct{}]{
			Left:  BasicNodeOf(1),
			Key:   2,
			Right: BasicNodeOf(3),
		},
		Key: 4,
		Right: &Node[int, struct{}]{
			Left:  BasicNodeOf(5),
			Key:   6,
			Right: BasicNodeOf(7),
		},
	}
}

func keysInOrder[X any](n *Node[int, X]) []int {
	if n == nil {
		return nil
	}
	out := keysInOrder(n.Left)
	out = append(out, n.Key)
	return append(out, keysInOrder(n.Right)...)
}

func TestRotateLeft(t *testing.T) {
	root := newCompleteTree_2Tall()
	n, p := root, root.Right

	should6 := RotateLeft(&root)

	assert.Equal(t, 6, should6.Key)
	assert.Same(t, p, root, "slot must hold the promoted node")
	assert.Same(t, n, p.Left)
	assert.Equal(t, 5, n.Right.Key)
	assert.Equal(t, 2, n.Left.Key)
	assert.Equal(t, 7, p.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysInOrder(root))
}

func TestRotateRight(t *testing.T) {
	root := newCompleteTree_2Tall()
	n, l := root, root.Left

	should2 := RotateRight(&root)

	assert.Equal(t, 2, should2.Key)
	assert.Same(t, l, root, "slot must hold the promoted node")
	assert.Same(t, n, l.Right)
	assert.Equal(t, 3, n.Left.Key)
	assert.Equal(t, 6, n.Right.Key)
	assert.Equal(t, 1, l.Left.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysInOrder(root))
}

func TestRotate_ChildSlot(t *testing.T) {
	root := newCompleteTree_2Tall()

	RotateRight(&root.Right)

	assert.Equal(t, 4, root.Key)
	assert.Equal(t, 5, root.Right.Key)
	assert.Nil(t, root.Right.Left)
	assert.Equal(t, 6, root.Right.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysInOrder(root))
}

func TestRotate_EmptyInnerGrandchild(t *testing.T) {
	// 1 -> 2 -> 3 chain, the rotated node has no inner grandchild
	root := BasicNodeOf(1)
	root.Right = BasicNodeOf(2)
	root.Right.Right = BasicNodeOf(3)

	RotateLeft(&root)

	assert.Equal(t, 2, root.Key)
	assert.Equal(t, 1, root.Left.Key)
	assert.Nil(t, root.Left.Right)
	assert.Equal(t, 3, root.Right.Key)
}

func TestRotate_Panics(t *testing.T) {
	var empty *Node[int, struct{}]
	assert.PanicsWithValue(t, "cannot RotateLeft on nil", func() { RotateLeft(&empty) })
	assert.PanicsWithValue(t, "cannot RotateRight on nil", func() { RotateRight(&empty) })

	leaf := BasicNodeOf(1)
	assert.PanicsWithValue(t, "cannot RotateLeft with nil right", func() { RotateLeft(&leaf) })
	assert.PanicsWithValue(t, "cannot RotateRight with nil left", func() { RotateRight(&leaf) })
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Greater, Compare("b", "a"))
	assert.Equal(t, Equal, Compare(1.5, 1.5))
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(7).String())
}

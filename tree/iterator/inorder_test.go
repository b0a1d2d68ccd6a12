package iterator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/trees/chops"
	"go.lepak.sg/trees/tree"
	"go.uber.org/goleak"
)

func newCompleteTree_2Tall() *tree.Node[int, struct{}] {
	return &tree.Node[int, struct{}]{
		Left: &tree.Node[int, struct{}]{
			Left: &tree.Node[int, struct{}]{
				Key: 1,
			},
			Key: 2,
			Right: &tree.Node[int, struct{}]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &tree.Node[int, struct{}]{
			Left: &tree.Node[int, struct{}]{
				Key: 5,
			},
			Key: 6,
			Right: &tree.Node[int, struct{}]{
				Key: 7,
			},
		},
	}
}

func newDogleg() *tree.Node[int, struct{}] {
	return &tree.Node[int, struct{}]{
		Left: &tree.Node[int, struct{}]{
			Left: &tree.Node[int, struct{}]{
				Key: 1,
			},
			Key: 5,
			Right: &tree.Node[int, struct{}]{
				Left: &tree.Node[int, struct{}]{
					Key: 6,
				},
				Key: 7,
			},
		},
		Key: 8,
		Right: &tree.Node[int, struct{}]{
			Key: 9,
		},
	}
}

func drain(i Iterator[int]) []int {
	var out []int
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name       string
		create     func() *tree.Node[int, struct{}]
		heightHint int
		post       func(t *testing.T, i *InOrder[int, struct{}])
	}{
		{
			name: "empty",
			create: func() *tree.Node[int, struct{}] {
				return nil
			},
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.False(t, i.Next(), "first")
				assert.False(t, i.Next(), "again")
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int, struct{}] {
				return &tree.Node[int, struct{}]{
					Key: 1,
				}
			},
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:       "height=2",
			create:     newCompleteTree_2Tall,
			heightHint: 2,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.True(t, i.Next(), "second")
				assert.Equal(t, 2, i.Item())
				assert.True(t, i.Next(), "third")
				assert.Equal(t, 3, i.Item())
				assert.True(t, i.Next(), "fourth")
				assert.Equal(t, 4, i.Item())
				assert.True(t, i.Next(), "fifth")
				assert.Equal(t, 5, i.Item())
				assert.True(t, i.Next(), "sixth")
				assert.Equal(t, 6, i.Item())
				assert.True(t, i.Next(), "seventh")
				assert.Equal(t, 7, i.Item())
				assert.False(t, i.Next(), "eighth")
			},
		},
		{
			name:       "dogleg",
			create:     newDogleg,
			heightHint: 3,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, drain(i))
			},
		},
		{
			name:   "stays ended",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.Len(t, drain(i), 7)
				assert.False(t, i.Next(), "after end")
				assert.False(t, i.Next(), "after end again")
			},
		},
		{
			name:   "reset",
			create: newDogleg,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.True(t, i.Next())
				assert.True(t, i.Next())
				assert.Equal(t, 5, i.Item())

				i.Reset()
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, drain(i))

				i.Reset()
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, drain(i))
			},
		},
		{
			name:       "negative hint",
			create:     newCompleteTree_2Tall,
			heightHint: -1,
			post: func(t *testing.T, i *InOrder[int, struct{}]) {
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, drain(i))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrder(tt.create(), tt.heightHint))
		})
	}
}

func TestInOrder_NilReceiver(t *testing.T) {
	var i *InOrder[int, struct{}]
	assert.False(t, i.Next())
}

func TestInOrder_CoIterate(t *testing.T) {
	co := chops.CoIterate[int](context.Background(), NewInOrder(newCompleteTree_2Tall(), 2))

	var got []int
	for k := range co.Items() {
		got = append(got, k)
		if k == 4 {
			co.Stop()
			break
		}
	}
	co.Stop()

	assert.Equal(t, []int{1, 2, 3, 4}, got)
	goleak.VerifyNone(t)
}

func TestInOrder_Collect(t *testing.T) {
	assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, chops.Collect[int](NewInOrder(newDogleg(), 0)))
	assert.Equal(t, []int{9, 8, 7, 6, 5, 1}, chops.Collect[int](NewInOrderReverse(newDogleg(), 0)))
}

package binary

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/trees/tree"
)

func TestBuildRandom(t *testing.T) {
	tr := BuildRandom(100, 42)
	assert.Equal(t, 100, tr.Len())
	for k := 0; k < 100; k++ {
		assert.True(t, tr.Contains(k))
	}
	assert.NoError(t, tree.CheckOrder(tr.root))

	// repeatable
	assert.Equal(t, tr.String(), BuildRandom(100, 42).String())
}

func TestBuildRandomBalanced(t *testing.T) {
	tr, attempts, err := BuildRandomBalanced(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.True(t, tr.Balanced())
	assert.GreaterOrEqual(t, attempts, 1)
	assert.Equal(t, 7, tr.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr, attempts, err = BuildRandomBalanced(ctx, 7, 1)
	assert.Nil(t, tr)
	assert.Equal(t, 0, attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromTraversals(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 100
	const size = 100

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())
		tr := BuildRandom(size, seed)
		origStr := tr.String()
		var inOrder, preOrder []int

		tr.InOrder(func(k int) bool {
			inOrder = append(inOrder, k)
			return true
		})

		tr.PreOrder(func(k int) bool {
			preOrder = append(preOrder, k)
			return true
		})

		require.Equal(t, len(inOrder), len(preOrder), "different traversal length")

		origInOrder, origPreOrder := make([]int, len(inOrder)), make([]int, len(preOrder))
		copy(origInOrder, inOrder)
		copy(origPreOrder, preOrder)

		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			trNew, err := FromTraversals(preOrder, inOrder)
			assert.NoError(t, err)
			assert.Equal(t, origStr, trNew.String(), "different tree was recreated")
			assert.Equal(t, size, trNew.Len())
			assert.NoError(t, trNew.Check())
			assert.Equal(t, origInOrder, inOrder, "inOrder was mutated")
			assert.Equal(t, origPreOrder, preOrder, "preOrder was mutated")
		})
	}
}

func TestFromTraversals_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pre, in []int
		wantErr string
	}{
		{
			name:    "empty",
			wantErr: "nothing to build",
		},
		{
			name:    "lengths",
			pre:     []int{1, 2},
			in:      []int{1},
			wantErr: "pre- and in-order traversals have different lengths",
		},
		{
			name:    "duplicate in-order",
			pre:     []int{1, 2},
			in:      []int{1, 1},
			wantErr: "in-order traversal is not ascending at 1",
		},
		{
			name:    "in-order not sorted",
			pre:     []int{2, 3, 1},
			in:      []int{3, 2, 1},
			wantErr: "in-order traversal is not ascending at 2",
		},
		{
			name:    "unknown pre-order key",
			pre:     []int{2, 3},
			in:      []int{1, 2},
			wantErr: "pre-order key 3 not found in in-order traversal",
		},
		{
			name:    "duplicate pre-order",
			pre:     []int{2, 2, 3},
			in:      []int{1, 2, 3},
			wantErr: "pre-order key 2 is out of place",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := FromTraversals(tt.pre, tt.in)
			assert.Nil(t, tr)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

var trForBench *Tree[int]

func BenchmarkFromTraversals(b *testing.B) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	sizes := []int{10, 100, 10000, 1000000}

	for _, size := range sizes {
		tr := BuildRandom(size, int64(seedrd.Uint64()))
		var inOrder, preOrder []int

		tr.InOrder(func(k int) bool {
			inOrder = append(inOrder, k)
			return true
		})

		tr.PreOrder(func(k int) bool {
			preOrder = append(preOrder, k)
			return true
		})

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				trForBench, _ = FromTraversals(preOrder, inOrder)
			}
		})
	}
}

func BenchmarkBalance(b *testing.B) {
	for _, size := range []int{100, 10000} {
		tr := BuildRandom(size, 1)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr.Balance()
			}
		})
	}
}

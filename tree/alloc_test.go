package tree

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHeap(t *testing.T) {
	var h Heap[string, int8]

	n, err := h.New("k", 1)
	require.NoError(t, err)
	assert.Equal(t, "k", n.Key)
	assert.Equal(t, int8(1), n.Extra)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)

	h.Free(n)
}

func TestPool(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		do    func(t *testing.T, p *Pool[int, int8])
	}{
		{
			name: "reuse",
			do: func(t *testing.T, p *Pool[int, int8]) {
				a, err := p.New(1, 1)
				require.NoError(t, err)
				a.Left = NodeOf[int, int8](0, 0)
				p.Free(a)
				assert.Equal(t, 0, p.Live())
				assert.Equal(t, 1, p.Idle())

				b, err := p.New(2, 0)
				require.NoError(t, err)
				assert.Same(t, a, b, "freed node should be handed out again")
				assert.Equal(t, 2, b.Key)
				assert.Equal(t, int8(0), b.Extra)
				assert.Nil(t, b.Left)
				assert.Nil(t, b.Right)
				assert.Equal(t, 1, p.Total())
			},
		},
		{
			name:  "limit",
			limit: 2,
			do: func(t *testing.T, p *Pool[int, int8]) {
				a, err := p.New(1, 0)
				require.NoError(t, err)
				_, err = p.New(2, 0)
				require.NoError(t, err)

				n, err := p.New(3, 0)
				assert.Nil(t, n)
				assert.True(t, errors.Is(err, ErrExhausted))

				p.Free(a)
				_, err = p.New(3, 0)
				assert.NoError(t, err)
				assert.Equal(t, 2, p.Live())
			},
		},
		{
			name: "unlimited",
			do: func(t *testing.T, p *Pool[int, int8]) {
				for i := 0; i < 1000; i++ {
					_, err := p.New(i, 0)
					require.NoError(t, err)
				}
				assert.Equal(t, 1000, p.Live())
				assert.Equal(t, 1000, p.Total())
				assert.Equal(t, 0, p.Idle())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, NewPool[int, int8](tt.limit))
		})
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := NewPool[int, struct{}](0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				n, err := p.New(g*100+i, struct{}{})
				if err != nil {
					t.Error(err)
					return
				}
				p.Free(n)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 0, p.Live())
	assert.Equal(t, p.Total(), p.Idle())
	assert.LessOrEqual(t, p.Total(), 8)

	goleak.VerifyNone(t)
}

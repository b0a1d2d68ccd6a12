package tree

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprint(t *testing.T) {
	tests := []struct {
		name  string
		root  func() *Node[int, struct{}]
		label func(*Node[int, struct{}]) string
		want  string
	}{
		{
			name: "empty",
			root: func() *Node[int, struct{}] { return nil },
			want: "",
		},
		{
			name: "one",
			root: func() *Node[int, struct{}] { return BasicNodeOf(1) },
			want: "1\n",
		},
		{
			name: "height=2",
			root: newCompleteTree_2Tall,
			want: `4
├─L─2
│   ├─L─1
│   └─R─3
└─R─6
    ├─L─5
    └─R─7
`,
		},
		{
			name: "right only",
			root: func() *Node[int, struct{}] {
				n := BasicNodeOf(1)
				n.Right = BasicNodeOf(2)
				return n
			},
			label: func(n *Node[int, struct{}]) string {
				return fmt.Sprintf("<%d>", n.Key)
			},
			want: "<1>\n└─R─<2>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sprint(tt.root(), tt.label))
		})
	}
}

func TestWriteDOT(t *testing.T) {
	root := BasicNodeOf(2)
	root.Left = BasicNodeOf(1)
	root.Right = BasicNodeOf(3)

	var sb strings.Builder
	assert.NoError(t, WriteDOT(&sb, root))
	assert.Equal(t, `digraph G {
node [shape = record,height=.1];
node0[label = "<f0> |<f1> 2|<f2> "];
"node0":f0 -> "node1":f1;
node1[label = "<f0> |<f1> 1|<f2> "];
"node0":f2 -> "node2":f1;
node2[label = "<f0> |<f1> 3|<f2> "];
}
`, sb.String())
}

func TestWriteDOT_Empty(t *testing.T) {
	var sb strings.Builder
	assert.NoError(t, WriteDOT[int, struct{}](&sb, nil))
	assert.Equal(t, "digraph G {\nnode [shape = record,height=.1];\n}\n", sb.String())
}

func TestWriteDOT_Escaping(t *testing.T) {
	var sb strings.Builder
	assert.NoError(t, WriteDOT(&sb, BasicNodeOf(`a|"b"`)))
	assert.Contains(t, sb.String(), `<f1> a\|\"b\"|<f2>`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteDOT_WriterError(t *testing.T) {
	assert.EqualError(t, WriteDOT(failingWriter{}, newCompleteTree_2Tall()), "disk full")
}

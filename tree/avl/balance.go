package avl

// Balance is the height of a node's right subtree minus the height of
// its left subtree. In a valid tree it is always one of the three
// named values.
type Balance int8

const (
	LeftHeavy  Balance = -1
	Balanced   Balance = 0
	RightHeavy Balance = 1
)

func (b Balance) String() string {
	switch b {
	case LeftHeavy:
		return "-1"
	case Balanced:
		return "0"
	case RightHeavy:
		return "+1"
	default:
		return "<invalid avl.Balance>"
	}
}

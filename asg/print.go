package asg

import (
	"fmt"
	"strings"

	"github.com/ranjeethmahankali/symba/asg/walk"
)

const (
	treeBranch = " ├── "
	treeBypass = " │   "
)

// String renders the Tree as an indented, index-labeled pretty-print,
// one line per node in pre-order, e.g.:
//
//	[2] Add(0, 1)
//	 ├── [0] Symbol(x)
//	 ├── [1] Symbol(y)
func (t Tree) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')

	depths := make([]int, t.Len())
	w := walk.New()
	it := w.WalkTree(t.inner, false, walk.Original)
	for {
		idx, parent, ok := it.Next()
		if !ok {
			break
		}
		if parent != walk.NoParent {
			depths[idx] = depths[parent] + 1
		}
		depth := depths[idx]
		for d := 0; d < depth; d++ {
			if d < depth-1 {
				sb.WriteString(treeBypass)
			} else {
				sb.WriteString(treeBranch)
			}
		}
		fmt.Fprintf(&sb, "[%d] %s\n", idx, t.Node(idx))
	}
	sb.WriteByte('\n')

	return sb.String()
}

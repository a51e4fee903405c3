package autodiff

import "github.com/born-ml/scalar/internal/scalar"

// frame is one entry of the DFS work stack. next is the index of the
// operand to visit next.
type frame struct {
	node *scalar.Value
	next int
}

// TopologicalOrder returns every node reachable from root in post-order:
// each node appears after all of its operands, and root is last.
//
// Nodes are deduplicated by identity. The traversal uses an explicit stack,
// so graph depth is bounded by memory rather than the goroutine stack.
//
// Complexity: O(V + E).
func TopologicalOrder(root *scalar.Value) []*scalar.Value {
	if root == nil {
		return nil
	}

	visited := map[*scalar.Value]struct{}{root: {}}
	order := make([]*scalar.Value, 0, 16)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := top.node.Operands()

		// Descend into the next unvisited operand.
		descended := false
		for top.next < len(operands) {
			child := operands[top.next]
			top.next++
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, frame{node: child})
			descended = true
			break
		}
		if descended {
			continue
		}

		// All operands emitted: emit the node itself.
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

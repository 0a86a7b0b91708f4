// Visitor-driven traversal for source ASTs.
// The engine performs a depth-first pre/post-order walk and dispatches
// to per-kind callbacks supplied by the caller. It is agnostic to what
// any callback does: passes register only the hooks they need and the
// engine never assumes anything about the output they build.
package ast

// VisitFunc is a traversal callback. It receives the node being
// visited and its parent; the parent is nil for the root node.
// Returning a non-nil error aborts the walk immediately.
type VisitFunc func(node Node, parent Node) error

// Hooks bundles the optional callbacks for one node kind. Enter runs
// before the node's children are visited, Exit runs after. Either or
// both may be nil.
type Hooks struct {
	Enter VisitFunc
	Exit  VisitFunc
}

// Visitor maps node kinds to their traversal hooks. Kinds absent from
// the table are still walked; they just trigger no callbacks.
type Visitor map[NodeKind]Hooks

// MaxTraversalDepth bounds the recursion of a traversal. Inputs nested
// deeper than this fail with MaxDepthExceededError instead of
// exhausting the call stack.
const MaxTraversalDepth = 10000

// Traverse performs a depth-first walk of the tree rooted at root:
// for each node it calls the Enter hook registered for the node's
// kind, then visits the children left to right, then calls the Exit
// hook. Children are visited with the current node as parent.
func Traverse(root Node, visitor Visitor) error {
	return traverse(root, nil, visitor, 0)
}

func traverse(node Node, parent Node, visitor Visitor, depth int) error {
	if depth >= MaxTraversalDepth {
		return &MaxDepthExceededError{Limit: MaxTraversalDepth}
	}

	hooks := visitor[node.Kind()]

	if hooks.Enter != nil {
		if err := hooks.Enter(node, parent); err != nil {
			return err
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, child := range n.Body {
			if err := traverse(child, node, visitor, depth+1); err != nil {
				return err
			}
		}
	case *CallExpression:
		for _, child := range n.Params {
			if err := traverse(child, node, visitor, depth+1); err != nil {
				return err
			}
		}
	case *NumberLiteral, *StringLiteral:
		// Leaf nodes have no children.
	default:
		// A node outside the closed kind set indicates a defect in
		// whatever produced the tree, not a user-input error.
		return &UnknownNodeKindError{Kind: node.Kind()}
	}

	if hooks.Exit != nil {
		if err := hooks.Exit(node, parent); err != nil {
			return err
		}
	}

	return nil
}

package model

// Flatten returns the containers (leaves) of the tree rooted at root.
// The walk is depth-first; at every level tiled children come before
// floating children, each in their original order.
func Flatten(root Node) []Container {
	var result []Container
	flattenRecursive(root, &result)
	return result
}

func flattenRecursive(n Node, result *[]Container) {
	switch n := n.(type) {
	case *Leaf:
		*result = append(*result, n.Container)
	case *Branch:
		for _, child := range n.Children {
			flattenRecursive(child, result)
		}
		for _, child := range n.Floating {
			flattenRecursive(child, result)
		}
	}
}

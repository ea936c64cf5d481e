package main

type treeNode struct {
	value       int
	left, right *treeNode
}

// treeSteps builds a binary search tree (equal values go right) and writes it back in
// order, yielding after each value is written.
func treeSteps(d *SortingDemo, yield func(Step) bool) {
	var root *treeNode
	for _, v := range d.data {
		node := &treeNode{value: v}
		if root == nil {
			root = node
			continue
		}
		for cur := root; ; {
			if d.less(v, cur.value) {
				if cur.left == nil {
					cur.left = node
					break
				}
				cur = cur.left
			} else {
				if cur.right == nil {
					cur.right = node
					break
				}
				cur = cur.right
			}
		}
	}

	var stack []*treeNode
	k := 0
	for cur := root; cur != nil || len(stack) > 0; {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d.set(k, cur.value)
		if !d.emit(yield, k, -1) {
			return
		}
		k++
		cur = cur.right
	}
}

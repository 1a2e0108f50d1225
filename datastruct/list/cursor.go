package list

// Cursor 指向链表中的一个位置，零值的 n 表示 End
//
// A cursor stays valid until its element is removed. Erase is the only way to
// remove an element while keeping a usable position, it returns the successor.
type Cursor struct {
	list *LinkedList
	n    *node
}

// Front returns a cursor to the first element, or End if the list is empty
func (list *LinkedList) Front() Cursor {
	if list == nil {
		panic("list is nil")
	}
	return Cursor{list: list, n: list.first}
}

// End returns the one-past-the-last sentinel
func (list *LinkedList) End() Cursor {
	if list == nil {
		panic("list is nil")
	}
	return Cursor{list: list}
}

// Erase removes the element under c and returns a cursor to the element after it
func (list *LinkedList) Erase(c Cursor) Cursor {
	if list == nil {
		panic("list is nil")
	}
	if c.list != list {
		panic("cursor belongs to another list")
	}
	if c.n == nil {
		panic("erase at end of list")
	}
	next := c.n.next
	list.removeNode(c.n)
	return Cursor{list: list, n: next}
}

// IsEnd reports whether c is the End sentinel
func (c Cursor) IsEnd() bool {
	return c.n == nil
}

// Equal reports whether both cursors point to the same position
func (c Cursor) Equal(other Cursor) bool {
	return c == other
}

// Next moves to the following element
func (c Cursor) Next() Cursor {
	if c.n == nil {
		panic("advance past end of list")
	}
	return Cursor{list: c.list, n: c.n.next}
}

// Value dereferences the cursor
func (c Cursor) Value() interface{} {
	if c.n == nil {
		panic("dereference end of list")
	}
	return c.n.val
}

package list

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toStrings(list *LinkedList) []string {
	result := make([]string, 0, list.Len())
	list.ForEach(func(i int, v interface{}) bool {
		result = append(result, v.(string))
		return true
	})
	return result
}

func TestPushFrontAndBack(t *testing.T) {
	list := Make()
	assert.Equal(t, 0, list.Len())
	list.PushBack("are")
	list.PushBack("awesome")
	list.PushBack("and")
	list.PushBack("fast")
	list.PushFront("lists")
	list.PushFront("C++")
	assert.Equal(t, 6, list.Len())
	assert.Equal(t, []string{"C++", "lists", "are", "awesome", "and", "fast"}, toStrings(list))
	assert.Equal(t, "C++", list.Get(0))
	assert.Equal(t, "fast", list.Get(5))
}

func TestGetSetInsert(t *testing.T) {
	list := Make()
	for i := 0; i < 10; i++ {
		list.Add(i)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, list.Get(i))
	}
	for i := 0; i < 10; i++ {
		list.Set(i, i*2)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i*2, list.Get(i))
	}

	list = Make("b", "d")
	list.Insert(0, "a")
	list.Insert(2, "c")
	list.Insert(4, "e")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, toStrings(list))
	assert.Panics(t, func() { list.Insert(6, "x") })
	assert.Panics(t, func() { list.Set(5, "x") })
	assert.Panics(t, func() { list.Get(-1) })
}

func TestRemove(t *testing.T) {
	list := Make()
	for i := 0; i < 10; i++ {
		list.Add(i)
	}
	for i := 9; i >= 0; i-- {
		assert.Equal(t, i, list.Remove(i))
		assert.Equal(t, i, list.Len())
	}
	assert.Nil(t, list.RemoveLast())

	list = Make(1, 2, 3)
	assert.Equal(t, 3, list.RemoveLast())
	assert.Equal(t, 2, list.Len())
}

func TestRemoveByVal(t *testing.T) {
	list := Make("a", "x", "b", "x", "c", "x")
	assert.Equal(t, 1, list.RemoveByVal(Equals("x"), 1))
	assert.Equal(t, []string{"a", "b", "x", "c", "x"}, toStrings(list))
	assert.Equal(t, 1, list.ReverseRemoveByVal(Equals("x"), 1))
	assert.Equal(t, []string{"a", "b", "x", "c"}, toStrings(list))

	list = Make("x", "a", "x", "x", "b", "x")
	assert.Equal(t, 4, list.RemoveAllByVal(Equals("x")))
	assert.Equal(t, []string{"a", "b"}, toStrings(list))
	assert.Equal(t, 0, list.RemoveAllByVal(Equals("x")))
	assert.Equal(t, 2, list.Len())
}

func TestContainsAndRange(t *testing.T) {
	list := Make()
	for i := 0; i < 10; i++ {
		list.Add(strconv.Itoa(i))
	}
	assert.True(t, list.Contains(Equals("7")))
	assert.False(t, list.Contains(Equals("11")))
	assert.Equal(t, []interface{}{"2", "3", "4"}, list.Range(2, 5))
	assert.Equal(t, list.Values(), list.Range(0, 10))
	assert.Panics(t, func() { list.Range(5, 2) })
}

func TestForEachBreak(t *testing.T) {
	list := Make(1, 2, 3, 4)
	visited := 0
	list.ForEach(func(i int, v interface{}) bool {
		visited++
		return i < 1
	})
	assert.Equal(t, 2, visited)
}

func TestCursorTraversal(t *testing.T) {
	list := Make("C++", "lists", "are")

	var forStyle []interface{}
	for it := list.Front(); it != list.End(); it = it.Next() {
		forStyle = append(forStyle, it.Value())
	}

	var whileStyle []interface{}
	it := list.Front()
	for !it.Equal(list.End()) {
		whileStyle = append(whileStyle, it.Value())
		it = it.Next()
	}
	assert.Equal(t, list.Values(), forStyle)
	assert.Equal(t, forStyle, whileStyle)

	empty := Make()
	assert.True(t, empty.Front().IsEnd())
	assert.Equal(t, empty.End(), empty.Front())
}

func TestCursorAtEndPanics(t *testing.T) {
	list := Make("a")
	end := list.End()
	assert.Panics(t, func() { end.Value() })
	assert.Panics(t, func() { end.Next() })
	assert.Panics(t, func() { list.Erase(end) })
	assert.Panics(t, func() { Make("a").Erase(list.Front()) })
}

func TestEraseReturnsSuccessor(t *testing.T) {
	list := Make("C++", "are", "awesome", "and", "fast")
	awesome := list.Front().Next().Next()

	var erased []string
	it := list.Front()
	for it != list.End() {
		s := it.Value().(string)
		if len(s) == 3 {
			erased = append(erased, s)
			it = list.Erase(it)
		} else {
			it = it.Next()
		}
	}
	assert.Equal(t, []string{"C++", "are", "and"}, erased)
	assert.Equal(t, []string{"awesome", "fast"}, toStrings(list))
	assert.Equal(t, 2, list.Len())

	// cursors to untouched elements survive
	require.Equal(t, "awesome", awesome.Value())
	assert.Equal(t, "fast", awesome.Next().Value())
	assert.True(t, awesome.Next().Next().IsEnd())

	last := list.Erase(awesome.Next())
	assert.True(t, last.IsEnd())
	assert.Equal(t, []string{"awesome"}, toStrings(list))
}

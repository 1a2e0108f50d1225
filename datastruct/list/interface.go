package list

// Expected 检查给定项目是否等于预期值
type Expected func(a interface{}) bool

// Consumer 遍历列表。
// 它接收索引和值作为参数，返回 true 继续遍历，返回 false 中断
type Consumer func(i int, v interface{}) bool

type List interface {
	Add(val interface{})
	PushBack(val interface{})
	PushFront(val interface{})
	Get(index int) (val interface{})
	Set(index int, val interface{})
	Insert(index int, val interface{})
	Remove(index int) (val interface{})
	RemoveLast() (val interface{})
	RemoveAllByVal(expected Expected) int
	RemoveByVal(expected Expected, count int) int
	ReverseRemoveByVal(expected Expected, count int) int
	Len() int
	ForEach(consumer Consumer)
	Contains(expected Expected) bool
	Range(start int, stop int) []interface{}

	// 游标操作
	Front() Cursor
	End() Cursor
	Erase(c Cursor) Cursor
}

// Equals returns an Expected matching values equal to val
func Equals(val interface{}) Expected {
	return func(a interface{}) bool {
		return a == val
	}
}

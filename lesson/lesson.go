// Package lesson walks through the basics of a doubly linked list:
// building it, looping over it with cursors and removing items.
package lesson

import (
	"bufio"
	"fmt"
	"io"

	"github.com/CodingCaius/listdemo/config"
	"github.com/CodingCaius/listdemo/datastruct/list"
	"github.com/CodingCaius/listdemo/lib/logger"
)

const separator = "--------------------"

// Report 记录脚本每个阶段观察到的状态
type Report struct {
	// 依次为: 初始化后, 六次插入后, remove() 后, erase() 后
	Sizes      []int
	ForVisits  []string
	WhileVisit []string
	Erased     []string
	Final      []string
	// 最终链表，供快照使用
	List *list.LinkedList
}

// Run executes the lesson script and writes its transcript to w
func Run(w io.Writer, props *config.LessonProperties) (*Report, error) {
	if props == nil {
		props = config.Default()
	}
	out := bufio.NewWriter(w)
	report := &Report{}

	myList := list.Make()
	report.Sizes = append(report.Sizes, myList.Len())
	fmt.Fprintf(out, "The list has %d items.\n", myList.Len())

	myList.PushBack("are")
	myList.PushBack("awesome")
	myList.PushBack("and")
	myList.PushBack("fast")

	myList.PushFront("lists")
	myList.PushFront("C++")

	report.Sizes = append(report.Sizes, myList.Len())
	fmt.Fprintf(out, "The list now has %d items.\n", myList.Len())
	fmt.Fprintln(out, separator)

	// for 风格遍历
	var it list.Cursor
	for it = myList.Front(); it != myList.End(); it = it.Next() {
		item := it.Value().(string)
		report.ForVisits = append(report.ForVisits, item)
		fmt.Fprintf(out, "Using for loop to look at item: %s\n", item)
		fmt.Fprintf(out, "This item is %d characters long\n", len(item))
	}
	fmt.Fprintln(out, separator)

	// while 风格遍历，复用同一个游标
	it = myList.Front()
	for it != myList.End() {
		item := it.Value().(string)
		report.WhileVisit = append(report.WhileVisit, item)
		fmt.Fprintf(out, "Using while loop at item: %s\n", item)
		it = it.Next()
	}
	fmt.Fprintln(out, separator)

	removed := myList.RemoveAllByVal(list.Equals(props.RemoveValue))
	logger.Debugf("remove(%q) dropped %d items", props.RemoveValue, removed)
	report.Sizes = append(report.Sizes, myList.Len())
	fmt.Fprintf(out, "The list has %d items after using remove()\n", myList.Len())
	fmt.Fprintln(out, separator)

	it = myList.Front()
	for it != myList.End() {
		item := it.Value().(string)
		if len(item) == props.EraseLength {
			report.Erased = append(report.Erased, item)
			fmt.Fprintf(out, "Erasing item: %s\n", item)
			it = myList.Erase(it)
		} else {
			it = it.Next()
		}
	}

	report.Sizes = append(report.Sizes, myList.Len())
	fmt.Fprintf(out, "The list has %d items after using erase() with iterators\n", myList.Len())
	fmt.Fprintln(out, "These items are:")
	for it = myList.Front(); it != myList.End(); it = it.Next() {
		item := it.Value().(string)
		report.Final = append(report.Final, item)
		fmt.Fprintln(out, item)
	}

	report.List = myList
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}
	return report, nil
}

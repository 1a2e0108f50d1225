package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/hdt3213/rdb/encoder"
	"github.com/hdt3213/rdb/parser"

	"github.com/CodingCaius/listdemo/datastruct/list"
	"github.com/CodingCaius/listdemo/lib/logger"
)

// 将链表保存为只包含一个 list key 的 RDB 文件

// Encode writes l as list object `key` in db 0
func Encode(w io.Writer, key string, l *list.LinkedList) error {
	values := make([][]byte, 0, l.Len())
	l.ForEach(func(i int, v interface{}) bool {
		values = append(values, []byte(fmt.Sprint(v)))
		return true
	})

	enc := encoder.NewEncoder(w)
	if err := enc.WriteHeader(); err != nil {
		return err
	}
	if err := enc.WriteAux("lesson-key", key); err != nil {
		return err
	}
	if err := enc.WriteDBHeader(0, 1, 0); err != nil {
		return err
	}
	if err := enc.WriteListObject(key, values); err != nil {
		return err
	}
	return enc.WriteEnd()
}

// Decode reads list object `key` back into a linked list of strings
func Decode(r io.Reader, key string) (*list.LinkedList, error) {
	var result *list.LinkedList
	dec := parser.NewDecoder(r)
	err := dec.Parse(func(o parser.RedisObject) bool {
		if o.GetKey() != key {
			return true
		}
		obj, ok := o.(*parser.ListObject)
		if !ok {
			logger.Warn(fmt.Sprintf("key %s is a %s, not a list", key, o.GetType()))
			return false
		}
		result = list.Make()
		for _, v := range obj.Values {
			result.Add(string(v))
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("list %s not found", key)
	}
	return result, nil
}

// Dump saves l into filename, replacing any previous snapshot
func Dump(filename string, key string, l *list.LinkedList) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer file.Close()
	if err := Encode(file, key, l); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	logger.Info(fmt.Sprintf("saved %d items to %s", l.Len(), filename))
	return nil
}

// Load reads the list `key` from filename
func Load(filename string, key string) (*list.LinkedList, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()
	return Decode(file, key)
}

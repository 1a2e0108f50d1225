package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// 演示程序的配置。所有字段都有默认值，没有配置文件时行为与固定脚本一致

// LessonProperties 定义全局配置属性
type LessonProperties struct {
	// 用 remove() 删除的值
	RemoveValue string `cfg:"remove-value"`
	// 遍历删除时匹配的字符串长度
	EraseLength int `cfg:"erase-length"`

	// 非空时将最终链表写入 RDB 文件
	DumpFilename string `cfg:"dump-filename"`
	DumpKey      string `cfg:"dump-key"`

	LogLevel string `cfg:"log-level"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

// Properties holds global config properties
var Properties *LessonProperties

func init() {
	Properties = Default()
}

// Default returns the properties the lesson script is written against
func Default() *LessonProperties {
	return &LessonProperties{
		RemoveValue: "lists",
		EraseLength: 3,
		DumpKey:     "myList",
		LogLevel:    "info",
	}
}

// parse 读取 `key value` 格式的配置，未出现的键保留默认值
func parse(src io.Reader) (*LessonProperties, error) {
	config := Default()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimLeft(line, " ")
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if ok {
			// fill config
			switch field.Type.Kind() {
			case reflect.String:
				fieldVal.SetString(value)
			case reflect.Int:
				intValue, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("config %s: %w", key, err)
				}
				fieldVal.SetInt(intValue)
			case reflect.Bool:
				boolValue := "yes" == value
				fieldVal.SetBool(boolValue)
			case reflect.Slice:
				if field.Type.Elem().Kind() == reflect.String {
					slice := strings.Split(value, ",")
					fieldVal.Set(reflect.ValueOf(slice))
				}
			}
		}
	}
	return config, nil
}

// SetupConfig 读取配置文件并更新全局 Properties
func SetupConfig(configFilename string) error {
	file, err := os.Open(configFilename)
	if err != nil {
		return err
	}
	defer file.Close()
	props, err := parse(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", configFilename, err)
	}
	configFilePath, err := filepath.Abs(configFilename)
	if err == nil {
		props.CfPath = configFilePath
	}
	Properties = props
	return nil
}

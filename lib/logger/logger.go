package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// LogLevel 日志级别
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

var (
	defaultPrefix      = ""
	defaultCallerDepth = 2
	logger             *log.Logger
	mu                 sync.Mutex
	logPrefix          = ""
	levelFlags         = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
	minLevel           = INFO
)

// stdout 留给演示输出，日志写到 stderr
func init() {
	logger = log.New(os.Stderr, defaultPrefix, log.LstdFlags)
}

// SetOutput redirects log lines to w
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// SetLevel drops messages below the named level; unknown names fall back to INFO
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = INFO
	for i, flag := range levelFlags {
		if strings.EqualFold(flag, name) || (flag == "WARN" && strings.EqualFold(name, "warning")) {
			minLevel = LogLevel(i)
			return
		}
	}
}

func setPrefix(level LogLevel) {
	_, file, line, ok := runtime.Caller(defaultCallerDepth + 1)
	if ok {
		logPrefix = fmt.Sprintf("[%s][%s:%d] ", levelFlags[level], filepath.Base(file), line)
	} else {
		logPrefix = fmt.Sprintf("[%s] ", levelFlags[level])
	}

	logger.SetPrefix(logPrefix)
}

func output(level LogLevel, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel {
		return
	}
	setPrefix(level)
	logger.Println(msg)
}

// Debug prints debug log
func Debug(v ...interface{}) {
	output(DEBUG, fmt.Sprint(v...))
}

// Debugf prints formatted debug log
func Debugf(format string, v ...interface{}) {
	output(DEBUG, fmt.Sprintf(format, v...))
}

// Info prints normal log
func Info(v ...interface{}) {
	output(INFO, fmt.Sprint(v...))
}

// Infof prints formatted normal log
func Infof(format string, v ...interface{}) {
	output(INFO, fmt.Sprintf(format, v...))
}

// Warn prints warning log
func Warn(v ...interface{}) {
	output(WARNING, fmt.Sprint(v...))
}

// Error prints error log
func Error(v ...interface{}) {
	output(ERROR, fmt.Sprint(v...))
}

// Errorf prints formatted error log
func Errorf(format string, v ...interface{}) {
	output(ERROR, fmt.Sprintf(format, v...))
}

// Fatal prints error log then stop the program
func Fatal(v ...interface{}) {
	output(FATAL, fmt.Sprint(v...))
	os.Exit(1)
}

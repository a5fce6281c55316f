package logging

import (
	"io"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects all log lines, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Error(v ...interface{}) {
	std.Println(append([]interface{}{"ERROR"}, v...)...)
}

func Warn(v ...interface{}) {
	std.Println(append([]interface{}{"WARN"}, v...)...)
}

func Info(v ...interface{}) {
	std.Println(append([]interface{}{"INFO"}, v...)...)
}

func Infof(format string, v ...interface{}) {
	format = "INFO " + format + "\n"
	std.Printf(format, v...)
}

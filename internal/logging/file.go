package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// UseFileLogger switches the global logger to write JSON lines to a rotated
// file at filepath.
func UseFileLogger(filepath string) {
	writer := &lumberjack.Logger{
		Filename:   filepath,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}

	L = newLogger(writer)
}

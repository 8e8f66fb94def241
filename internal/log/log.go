// Package log writes levelled, colourised messages for the gcd command.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Error
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

var Level = LogLevel_Info

// Output is where all messages go; colours are dropped automatically when it
// is not a terminal.
var Output io.Writer = color.Error

var red = color.New(color.FgRed)
var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

// ParseLevel maps a level name to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "none", "silent":
		return LogLevel_None, nil
	case "error":
		return LogLevel_Error, nil
	case "warn", "warning":
		return LogLevel_Warn, nil
	case "info":
		return LogLevel_Info, nil
	case "debug":
		return LogLevel_Debug, nil
	}
	return LogLevel_Info, fmt.Errorf("unknown log level %q", s)
}

func Errorf(f string, args ...interface{}) {
	if LogLevel_Error <= Level {
		red.Fprintf(Output, "[ERROR] "+f+"\n", args...)
	}
}

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(Output, f+"\n", args...)
	}
}

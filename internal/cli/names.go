package cli

import (
	"fmt"
	"hilog/pkg/protocol"
	"strconv"
	"strings"
)

// Platform log type codes
var logTypeNames = map[string]protocol.LogType{
	"app":  0,
	"init": 1,
	"core": 3,
	"kmsg": 4,
}

// Platform log level codes
var logLevelNames = map[string]protocol.LogLevel{
	"debug": 3,
	"info":  4,
	"warn":  5,
	"error": 6,
	"fatal": 7,
}

const (
	maxLogTypeCode  uint64 = 15
	maxLogLevelCode uint64 = 7
)

// Accepts a type name or a code that fits the 4-bit field
func ParseLogType(raw string) (logType protocol.LogType, err error) {
	code, err := parseCode(raw, maxLogTypeCode, func(name string) (uint8, bool) {
		value, ok := logTypeNames[name]
		return uint8(value), ok
	})
	if err != nil {
		err = fmt.Errorf("invalid log type: %v", err)
		return
	}
	logType = protocol.LogType(code)
	return
}

// Accepts a level name or a code that fits the 3-bit field
func ParseLogLevel(raw string) (level protocol.LogLevel, err error) {
	code, err := parseCode(raw, maxLogLevelCode, func(name string) (uint8, bool) {
		value, ok := logLevelNames[name]
		return uint8(value), ok
	})
	if err != nil {
		err = fmt.Errorf("invalid log level: %v", err)
		return
	}
	level = protocol.LogLevel(code)
	return
}

func parseCode(raw string, maxCode uint64, lookup func(string) (uint8, bool)) (code uint8, err error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if value, ok := lookup(name); ok {
		code = value
		return
	}

	value, err := strconv.ParseUint(name, 10, 8)
	if err != nil {
		err = fmt.Errorf("unknown name '%s'", raw)
		return
	}
	if value > maxCode {
		err = fmt.Errorf("code %d out of range 0-%d", value, maxCode)
		return
	}
	code = uint8(value)
	return
}

// Name for a type code, or the number when unnamed
func LogTypeName(logType protocol.LogType) (name string) {
	for candidate, code := range logTypeNames {
		if code == logType {
			name = candidate
			return
		}
	}
	name = strconv.Itoa(int(logType))
	return
}

// Upper case name for a level code, or the number when unnamed
func LogLevelName(level protocol.LogLevel) (name string) {
	for candidate, code := range logLevelNames {
		if code == level {
			name = strings.ToUpper(candidate)
			return
		}
	}
	name = strconv.Itoa(int(level))
	return
}

package logging

import (
	"log"
	"strings"

	gormlogger "gorm.io/gorm/logger"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var current Level = LevelInfo

// Init sets the log level from its name (debug|info|error). Unknown names
// fall back to info.
func Init(level string) {
	current = ParseLevel(level)
}

func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return LevelError
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

func Current() Level {
	return current
}

// GormLevel maps the process log level onto gorm's SQL logger.
func GormLevel(l Level) gormlogger.LogLevel {
	switch l {
	case LevelDebug:
		return gormlogger.Info
	case LevelError:
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

func Debugf(format string, args ...interface{}) {
	if current <= LevelDebug {
		log.Printf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if current <= LevelInfo {
		log.Printf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

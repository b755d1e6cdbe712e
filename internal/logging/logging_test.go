package logging

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLevel(LevelDebug))
	assert.Equal(t, gormlogger.Warn, GormLevel(LevelInfo))
	assert.Equal(t, gormlogger.Error, GormLevel(LevelError))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	prev, flags := current, log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		current = prev
	})
	log.SetFlags(0)

	Init("error")
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Errorf("error %d", 3)

	assert.Equal(t, "error 3\n", buf.String())

	buf.Reset()
	Init("debug")
	Debugf("debug %d", 1)
	assert.Equal(t, "debug 1\n", buf.String())
}

package audit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/clientbook/internal/logging"
)

// Logger writes one line per mutation to the process log.
type Logger struct {
	logf func(format string, args ...interface{})
}

func New() *Logger {
	return &Logger{logf: logging.Infof}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var b strings.Builder
	fmt.Fprintf(&b, "audit action=%s entity=%s", action, entity)

	if entityID != nil {
		fmt.Fprintf(&b, " id=%d", *entityID)
	}

	if metadata != nil {
		meta, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("audit metadata: %w", err)
		}
		fmt.Fprintf(&b, " meta=%s", meta)
	}

	l.logf("%s", b.String())
	return nil
}

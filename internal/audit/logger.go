package audit

import (
	"log"
	"strconv"
)

// Logger writes audit entries to the process log. Entries carry the
// action, entity and ids only; credentials and lookup outcomes for
// unknown accounts are never recorded.
type Logger struct {
	out *log.Logger
}

func New() *Logger {
	return &Logger{out: log.Default()}
}

func NewWithOutput(out *log.Logger) *Logger {
	return &Logger{out: out}
}

func (l *Logger) Log(userID *int, action, entity string, entityID *int) error {
	uid := "-"
	if userID != nil {
		uid = strconv.Itoa(*userID)
	}
	eid := "-"
	if entityID != nil {
		eid = strconv.Itoa(*entityID)
	}
	l.out.Printf("audit action=%s entity=%s entity_id=%s user_id=%s", action, entity, eid, uid)
	return nil
}

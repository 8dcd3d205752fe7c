package server

import (
	"time"

	"github.com/awesome-cap/hashmap"
)

var sessions = hashmap.New()

func CreateSession(delay time.Duration) *Session {
	session := NewSession(delay)
	sessions.Set(session.ID, session)
	return session
}

func GetSession(id string) *Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

func DeleteSession(id string) {
	if session := GetSession(id); session != nil {
		session.Close()
		sessions.Del(id)
	}
}

// SweepSessions drops sessions idle for longer than ttl and reports how
// many were removed.
func SweepSessions(ttl time.Duration) int {
	expired := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		session := e.Value().(*Session)
		if time.Since(session.LastActive()) > ttl {
			expired = append(expired, session)
		}
	})
	for _, session := range expired {
		session.Close()
		sessions.Del(session.ID)
	}
	return len(expired)
}

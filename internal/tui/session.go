package tui

import (
	"time"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/utils"
)

// Session describes one authenticated run of the main loop. A fresh session
// is minted on every successful login, including re-logins after a logout.
type Session struct {
	ID        string
	UserID    int64
	Username  string
	StartedAt time.Time
}

func newSession(userID int64, username string) *Session {
	return &Session{
		ID:        utils.NewUUIDGenerator().Generate(),
		UserID:    userID,
		Username:  username,
		StartedAt: time.Now(),
	}
}

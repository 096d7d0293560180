package application

import (
	"time"

	"github.com/hugokent/staffctl/internal/domain"
)

type SessionStatus struct {
	Session   domain.Session
	CheckedAt time.Time
}

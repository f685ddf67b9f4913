package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one audit entry per completed HTTP request. UserID is nil
// when the request carried no resolvable identity. Entries are never mutated
// or deleted by the application.
type Transaction struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     *uuid.UUID `json:"userId" gorm:"type:uuid;index"`
	Endpoint   string     `json:"endpoint" gorm:"not null"`
	Method     string     `json:"method" gorm:"not null"`
	StatusCode int        `json:"statusCode" gorm:"not null"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"index"`
}

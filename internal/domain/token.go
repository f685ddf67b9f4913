package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistedToken is a revoked bearer token. Presence in this table is
// sufficient to reject the token regardless of its cryptographic expiry.
// No uniqueness is enforced on Token; repeated logouts with the same token
// insert duplicate rows and the sweep bounds growth.
type BlacklistedToken struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Token         string    `json:"token" gorm:"not null;index"`
	BlacklistedAt time.Time `json:"blacklistedAt" gorm:"not null;index"`
}

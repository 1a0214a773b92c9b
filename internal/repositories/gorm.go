package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// poolAcquireTimeout bounds how long a statement may wait for a pool
// connection. A saturated pool fails the request instead of queueing it
// indefinitely.
var poolAcquireTimeout = 30 * time.Second

// withTimeout returns a session whose statements are cancelled when the
// acquire timeout elapses. Callers must invoke cancel once the statement
// has run.
func withTimeout(db *gorm.DB) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), poolAcquireTimeout)
	return db.WithContext(ctx), cancel
}

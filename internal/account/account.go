package account

import "time"

// Account is a registered identity. ID and Email are immutable after
// creation; PasswordDigest is opaque and only ever handed to the hasher's
// verify operation, never compared by equality.
type Account struct {
	ID             int64
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
}

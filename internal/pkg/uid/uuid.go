package uid

import "github.com/google/uuid"

// UUID generates time-ordered UUID strings used as correlation IDs.
type UUID struct {
	next func() (uuid.UUID, error)
}

// NewUUID returns a UUIDv7 generator.
func NewUUID() *UUID {
	return &UUID{next: uuid.NewV7}
}

// Generate returns a new UUID string. It falls back to a random UUIDv4 when
// the time-ordered source fails.
func (u *UUID) Generate() string {
	if u.next != nil {
		if id, err := u.next(); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

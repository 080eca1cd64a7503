package postgres

import "github.com/google/uuid"

// canonicalUUID returns id in the form Postgres stores in UUID columns.
// ok is false when id cannot be cast to uuid.
func canonicalUUID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

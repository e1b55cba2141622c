package recordstore

import "strings"

// Key prefixes for the two scopes.
const (
	DurablePrefix = "tp_"
	sessionPrefix = "tp_session_"
)

// Record keys, relative to the scope prefix.
const (
	KeyUser  = "user"
	KeyPlans = "plans"
)

// maxSessionIDLen keeps session keys well under memcached's 250 byte limit.
const maxSessionIDLen = 64

// SessionPrefix returns the key prefix of one session scope.
func SessionPrefix(sessionID string) string {
	return sessionPrefix + sessionID + "_"
}

// ValidSessionID reports whether id can name a session scope: 1 to 64 ASCII
// letters, digits or hyphens. Underscores are excluded so a key's session
// can be recovered from the key alone.
func ValidSessionID(id string) bool {
	if id == "" || len(id) > maxSessionIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

// groupOf returns the unit a key expires with: its session prefix for
// session keys, the key itself otherwise.
func groupOf(key string) string {
	rest, ok := strings.CutPrefix(key, sessionPrefix)
	if !ok {
		return key
	}
	sid, _, ok := strings.Cut(rest, "_")
	if !ok {
		return key
	}
	return SessionPrefix(sid)
}

// ActivitiesKey returns the key of a trip's activity list.
func ActivitiesKey(tripID string) string {
	return "activities_" + tripID
}

// ExpensesKey returns the key of a trip's expense list.
func ExpensesKey(tripID string) string {
	return "expenses_" + tripID
}

package archive

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const keyTimeLayout = "20060102T150405.000000000Z"

// Key derives the storage key for a record saved by user at ts:
//
//	<user>_<UTC yyyymmddThhmmss.nnnnnnnnnZ>_<8 hex>.json
//
// Keys sort by user, then time. The random suffix keeps two saves in the
// same nanosecond apart. Characters outside [A-Za-z0-9._-] in user become
// '_'.
func Key(user string, ts time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return sanitize(user) + "_" + ts.UTC().Format(keyTimeLayout) + "_" + suffix + ".json"
}

func sanitize(user string) string {
	if user == "" {
		return "anonymous"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, user)
}

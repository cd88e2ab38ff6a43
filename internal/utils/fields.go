package utils

import "strings"

// StripMetaFields removes keys carrying the reserved "_" prefix from a
// request payload. The token travels inside PATCH bodies alongside entity
// data, and must never reach the update builder.
func StripMetaFields(fields map[string]interface{}) {
	for key := range fields {
		if strings.HasPrefix(key, "_") {
			delete(fields, key)
		}
	}
}

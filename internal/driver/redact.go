package driver

import (
	"strings"

	"github.com/belphemur/hypersql/internal/constants"
)

const redactedValue = "****"

// RedactURL masks the value of a non-empty password parameter in a connection URL
func RedactURL(url string) string {
	base, query, found := strings.Cut(url, constants.DefaultDelimiter)
	if !found {
		return url
	}

	segments := strings.Split(query, constants.DefaultDelimiter)
	for i, segment := range segments {
		key, value, hasValue := strings.Cut(segment, "=")
		if hasValue && value != "" && strings.EqualFold(key, "password") {
			segments[i] = key + "=" + redactedValue
		}
	}
	return base + constants.DefaultDelimiter + strings.Join(segments, constants.DefaultDelimiter)
}

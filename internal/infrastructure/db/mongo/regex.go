package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchRegex builds a case-insensitive substring pattern from raw user
// input. Metacharacters are escaped so the input matches literally instead of
// being interpreted by the server.
func searchRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// exactRegex matches the whole field case-insensitively.
func exactRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

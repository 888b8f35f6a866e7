package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// keywordRegex builds a case-insensitive substring matcher for the generic
// keyword search every list endpoint supports. The keyword is quoted so user
// input cannot inject regex syntax.
func keywordRegex(keyword string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
}

// sortKey maps an API-level sort field to its bson key through an explicit
// whitelist; unknown fields fall back to storage order.
func sortKey(field string, allowed map[string]string) (string, bool) {
	key, ok := allowed[field]
	return key, ok
}

func sortDirection(desc bool) int {
	if desc {
		return -1
	}
	return 1
}

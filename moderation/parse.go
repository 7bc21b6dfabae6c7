package moderation

import (
	"regexp"
	"strings"
	"unicode"
)

var mentionPattern = regexp.MustCompile(`<@!?(\d+)>`)

// ParseUserIDs extracts user ids from free-form input. Tokens may be user
// mentions (<@id> or <@!id>, possibly glued together) or bare numeric ids,
// separated by whitespace or commas. Anything else is skipped. Duplicates are
// kept in input order.
func ParseUserIDs(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	var ids []string
	for _, token := range tokens {
		if isDigits(token) {
			ids = append(ids, token)
			continue
		}
		if mentionPattern.ReplaceAllString(token, "") != "" {
			continue
		}
		for _, m := range mentionPattern.FindAllStringSubmatch(token, -1) {
			ids = append(ids, m[1])
		}
	}
	return ids
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

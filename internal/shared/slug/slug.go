package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// FromName makes a lowercase URL slug; names with no latin letters or
// digits fall back to "book".
func FromName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "book"
	}
	return s
}

// WithID appends the id so two books with one title stay distinct.
func WithID(name string, id int64) string {
	return FromName(name) + "-" + strconv.FormatInt(id, 10)
}

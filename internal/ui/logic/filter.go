package logic

import (
	"fmt"
	"strings"

	"usertable/internal/domain"
)

// Field identifies a user attribute the search query can be scoped to
type Field string

const (
	FieldUsername Field = "username"
	FieldCity     Field = "city"
	FieldCompany  Field = "company"
)

// AllFields lists the selectable fields in display order
var AllFields = []Field{FieldUsername, FieldCity, FieldCompany}

var extractors = map[Field]func(domain.User) string{
	FieldUsername: func(u domain.User) string { return u.Username },
	FieldCity:     func(u domain.User) string { return u.Address.City },
	FieldCompany:  func(u domain.User) string { return u.Company.Name },
}

var labels = map[Field]string{
	FieldUsername: "Username",
	FieldCity:     "City",
	FieldCompany:  "Company",
}

// ParseField converts a name like "city" into a Field
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := extractors[f]; !ok {
		return "", fmt.Errorf("unknown filter field %q", name)
	}
	return f, nil
}

// Label returns the checkbox label for the field
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Extract returns the field's value for the user
func (f Field) Extract(u domain.User) string {
	if fn, ok := extractors[f]; ok {
		return fn(u)
	}
	return ""
}

// joinFields concatenates the active field values in filter order, comma separated
func joinFields(filters []Field, u domain.User) string {
	values := make([]string, 0, len(filters))
	for _, f := range filters {
		values = append(values, f.Extract(u))
	}
	return strings.Join(values, ",")
}

// Matches reports whether the user matches the query under the active filters.
// The values are joined into one string before the substring test, so a query
// containing the separator can match across two adjacent fields.
func Matches(filters []Field, query string, u domain.User) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(joinFields(filters, u))
	return strings.Contains(haystack, strings.ToLower(query))
}

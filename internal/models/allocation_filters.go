package models

import "strings"

// FilterCriteria contains the dashboard filter selections.
// An empty value or FilterAll disables the corresponding criterion.
type FilterCriteria struct {
	SearchTerm   string
	Category     string
	Constituency string
	Province     string
}

// IsActive reports whether a criterion value restricts the result
func IsActive(value string) bool {
	return value != "" && value != FilterAll
}

// ActiveCount returns how many criteria are restricting the result
func (c FilterCriteria) ActiveCount() int {
	count := 0
	if c.SearchTerm != "" {
		count++
	}
	for _, v := range []string{c.Category, c.Constituency, c.Province} {
		if IsActive(v) {
			count++
		}
	}
	return count
}

// IsEmpty reports whether no criterion is active
func (c FilterCriteria) IsEmpty() bool {
	return c.ActiveCount() == 0
}

// String renders the active criteria for logging
func (c FilterCriteria) String() string {
	var parts []string
	if c.SearchTerm != "" {
		parts = append(parts, "search="+c.SearchTerm)
	}
	if IsActive(c.Category) {
		parts = append(parts, "category="+c.Category)
	}
	if IsActive(c.Constituency) {
		parts = append(parts, "constituency="+c.Constituency)
	}
	if IsActive(c.Province) {
		parts = append(parts, "province="+c.Province)
	}
	if len(parts) == 0 {
		return FilterAll
	}
	return strings.Join(parts, ",")
}

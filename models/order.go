package models

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// OrderBy selects the sort key for person listings.
type OrderBy string

const (
	OrderByName OrderBy = "name"
	OrderByAge  OrderBy = "age"
)

const DefaultOrderBy = OrderByName

// ParseOrderBy maps a query-string value to an OrderBy. An empty value
// selects the default; anything else must match one of the known keys.
func ParseOrderBy(value string) (OrderBy, error) {
	switch strings.ToLower(value) {
	case "":
		return DefaultOrderBy, nil
	case string(OrderByName):
		return OrderByName, nil
	case string(OrderByAge):
		return OrderByAge, nil
	default:
		return "", fmt.Errorf("invalid order key %q, must be %q or %q", value, OrderByName, OrderByAge)
	}
}

// SortPersons sorts people in place by the chosen key. The sort is stable:
// ties keep their relative pre-sort order. Both store backends run their
// listings through this so the ordering contract cannot drift between them.
func SortPersons(people []Person, orderBy OrderBy) {
	switch orderBy {
	case OrderByAge:
		sort.SliceStable(people, func(i, j int) bool {
			return ageOf(people[i]) < ageOf(people[j])
		})
	default:
		sort.SliceStable(people, func(i, j int) bool {
			return people[i].Name < people[j].Name
		})
	}
}

// missing ages sort before any set age
func ageOf(p Person) int {
	if p.Age == nil {
		return math.MinInt
	}
	return *p.Age
}

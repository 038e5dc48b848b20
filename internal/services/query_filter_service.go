package services

import (
	"fmt"
	"regexp"
	"strings"
)

// filterColumns are the box columns an expression filter may reference.
// Anything else is left untouched so it fails at the database layer instead
// of injecting arbitrary SQL.
var filterColumns = map[string]bool{
	"box_number":  true,
	"priority":    true,
	"category":    true,
	"box_size":    true,
	"description": true,
	"notes":       true,
	"editor":      true,
}

var comparisonRegex = regexp.MustCompile(`(?i)(\w+)\s+(eq|ne|gt|ge|lt|le|startswith|contains|endswith)\s+['"]([^'"]*)['"]`)

// ParseFilter translates a filter expression such as
//
//	priority eq 'Priority 1' and description contains 'kitchen'
//
// into a parameterized WHERE fragment and its arguments.
func ParseFilter(filter string) (string, []interface{}) {
	var params []interface{}

	logicalOperators := map[string]string{
		" and ": " AND ",
		" or ":  " OR ",
	}
	for key, value := range logicalOperators {
		filter = strings.ReplaceAll(filter, key, value)
	}

	filter = comparisonRegex.ReplaceAllStringFunc(filter, func(match string) string {
		matches := comparisonRegex.FindStringSubmatch(match)
		if len(matches) != 4 {
			return match
		}
		column := strings.ToLower(matches[1])
		operator := strings.ToLower(matches[2])
		value := matches[3]

		if !filterColumns[column] {
			return match
		}

		var sqlExpr string
		switch operator {
		case "eq":
			sqlExpr = fmt.Sprintf("%s = ?", column)
			params = append(params, value)
		case "ne":
			sqlExpr = fmt.Sprintf("%s != ?", column)
			params = append(params, value)
		case "gt":
			sqlExpr = fmt.Sprintf("%s > ?", column)
			params = append(params, value)
		case "ge":
			sqlExpr = fmt.Sprintf("%s >= ?", column)
			params = append(params, value)
		case "lt":
			sqlExpr = fmt.Sprintf("%s < ?", column)
			params = append(params, value)
		case "le":
			sqlExpr = fmt.Sprintf("%s <= ?", column)
			params = append(params, value)
		case "startswith":
			sqlExpr = fmt.Sprintf("%s LIKE ?", column)
			params = append(params, value+"%")
		case "contains":
			sqlExpr = fmt.Sprintf("%s LIKE ?", column)
			params = append(params, "%"+value+"%")
		case "endswith":
			sqlExpr = fmt.Sprintf("%s LIKE ?", column)
			params = append(params, "%"+value)
		default:
			return match
		}
		return sqlExpr
	})

	return filter, params
}

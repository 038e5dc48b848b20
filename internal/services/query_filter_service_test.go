package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter_SingleComparison(t *testing.T) {
	expr, params := ParseFilter("priority eq 'Priority 1'")

	assert.Equal(t, "priority = ?", expr)
	assert.Equal(t, []interface{}{"Priority 1"}, params)
}

func TestParseFilter_LogicalOperators(t *testing.T) {
	expr, params := ParseFilter("priority eq 'Store' and box_size ne 'Small'")

	assert.Equal(t, "priority = ? AND box_size != ?", expr)
	assert.Equal(t, []interface{}{"Store", "Small"}, params)

	expr, params = ParseFilter("category eq 'Kitchen' or category eq 'Garage'")

	assert.Equal(t, "category = ? OR category = ?", expr)
	assert.Len(t, params, 2)
}

func TestParseFilter_StringOperators(t *testing.T) {
	expr, params := ParseFilter("description startswith 'winter'")
	assert.Equal(t, "description LIKE ?", expr)
	assert.Equal(t, []interface{}{"winter%"}, params)

	expr, params = ParseFilter("notes contains 'fragile'")
	assert.Equal(t, "notes LIKE ?", expr)
	assert.Equal(t, []interface{}{"%fragile%"}, params)

	expr, params = ParseFilter(`description endswith "gear"`)
	assert.Equal(t, "description LIKE ?", expr)
	assert.Equal(t, []interface{}{"%gear"}, params)
}

func TestParseFilter_NumericComparisons(t *testing.T) {
	expr, params := ParseFilter("box_number ge '3' and box_number lt '10'")

	assert.Equal(t, "box_number >= ? AND box_number < ?", expr)
	assert.Equal(t, []interface{}{"3", "10"}, params)
}

func TestParseFilter_UnknownColumnUntouched(t *testing.T) {
	expr, params := ParseFilter("password eq 'secret'")

	assert.Equal(t, "password eq 'secret'", expr)
	assert.Empty(t, params)
}

func TestParseFilter_CaseInsensitiveOperator(t *testing.T) {
	expr, params := ParseFilter("Priority EQ 'Store'")

	assert.Equal(t, "priority = ?", expr)
	assert.Equal(t, []interface{}{"Store"}, params)
}

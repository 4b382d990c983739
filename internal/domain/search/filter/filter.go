package filter

import "fmt"

// MaxConditionsPerGroup is the maximum number of conditions per filter group.
const MaxConditionsPerGroup = 64

// Expression is a structured filter with must/should boolean semantics:
// every must condition holds and, when should is non-empty, at least one
// should condition holds.
type Expression struct {
	must   []Condition
	should []Condition
}

// NewExpression validates and creates a filter Expression.
func NewExpression(must, should []Condition) (Expression, error) {
	if len(must) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many must conditions (max %d)", MaxConditionsPerGroup)
	}
	if len(should) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many should conditions (max %d)", MaxConditionsPerGroup)
	}
	return Expression{must: must, should: should}, nil
}

// Must returns the must conditions.
func (e Expression) Must() []Condition { return e.must }

// Should returns the should conditions.
func (e Expression) Should() []Condition { return e.should }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool {
	return len(e.must) == 0 && len(e.should) == 0
}

// Op is the comparison a condition performs.
type Op int

// Condition operators.
const (
	// Contains matches when the field contains any value, case-insensitively.
	Contains Op = iota + 1
	// CompactContains is Contains after hyphens and whitespace are stripped from the field.
	CompactContains
	// In matches when the field equals any value exactly.
	In
	// Bool matches a boolean field.
	Bool
	// Between matches a numeric field inside an inclusive range.
	Between
)

func (o Op) String() string {
	switch o {
	case Contains:
		return "contains"
	case CompactContains:
		return "compact_contains"
	case In:
		return "in"
	case Bool:
		return "bool"
	case Between:
		return "between"
	default:
		return "unknown"
	}
}

// Condition is a single filter clause over one catalog field.
type Condition struct {
	key       string
	op        Op
	values    []string
	flag      bool
	rangeExpr *Range
}

// NewContains creates a case-insensitive substring condition matching any of values.
func NewContains(key string, values ...string) (Condition, error) {
	return newValues(key, Contains, values)
}

// NewCompactContains creates a substring condition over the compacted field value.
func NewCompactContains(key string, values ...string) (Condition, error) {
	return newValues(key, CompactContains, values)
}

// NewIn creates an exact membership condition.
func NewIn(key string, values ...string) (Condition, error) {
	return newValues(key, In, values)
}

func newValues(key string, op Op, values []string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if len(values) == 0 {
		return Condition{}, fmt.Errorf("at least one %s value is required for key %q", op, key)
	}
	for _, v := range values {
		if v == "" {
			return Condition{}, fmt.Errorf("empty %s value for key %q", op, key)
		}
	}
	return Condition{key: key, op: op, values: values}, nil
}

// NewBool creates a boolean equality condition.
func NewBool(key string, v bool) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, op: Bool, flag: v}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, op: Between, rangeExpr: &r}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Op returns the comparison operator.
func (c Condition) Op() Op { return c.op }

// Values returns the match values of Contains, CompactContains and In conditions.
func (c Condition) Values() []string { return c.values }

// Flag returns the expected value of a Bool condition.
func (c Condition) Flag() bool { return c.flag }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// Range is an inclusive numeric range. Either bound may be open.
type Range struct {
	gte *float64
	lte *float64
}

// NewRangeFilter validates and creates a Range. At least one bound is required.
func NewRangeFilter(gte, lte *float64) (Range, error) {
	if gte == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	if gte != nil && lte != nil && *gte > *lte {
		return Range{}, fmt.Errorf("range lower bound %v exceeds upper bound %v", *gte, *lte)
	}
	return Range{gte: gte, lte: lte}, nil
}

// GTE returns the lower inclusive bound.
func (r Range) GTE() *float64 { return r.gte }

// LTE returns the upper inclusive bound.
func (r Range) LTE() *float64 { return r.lte }

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	if r.gte != nil && v < *r.gte {
		return false
	}
	if r.lte != nil && v > *r.lte {
		return false
	}
	return true
}

package filter

// Category names one filter slice of the dashboard (e.g. "merchants").
type Category string

// Key names a single filter within a category.
type Key string

// Kind is the declared value type of a filter key.
type Kind int

const (
	KindString    Kind = iota + 1
	KindStringSet                 // ordered, deduplicated
	KindDateRange                 // optional period
	KindID                        // optional int64
	KindBool                      // optional flag
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringSet:
		return "string_set"
	case KindDateRange:
		return "date_range"
	case KindID:
		return "id"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ComparisonType defines how a filter value becomes a SQL predicate.
type ComparisonType string

const (
	Equal    ComparisonType = "eq"
	InList   ComparisonType = "in"
	Contains ComparisonType = "contains" // ILIKE %val%
	Between  ComparisonType = "between"  // >= from, <= to
)

// defaultOperator returns the comparison used when a key does not declare one.
func defaultOperator(k Kind) ComparisonType {
	switch k {
	case KindString:
		return Contains
	case KindStringSet:
		return InList
	case KindDateRange:
		return Between
	default:
		return Equal
	}
}

// operatorAllowed reports whether op can be applied to values of kind k.
func operatorAllowed(k Kind, op ComparisonType) bool {
	switch op {
	case Equal:
		return k == KindString || k == KindID || k == KindBool
	case Contains:
		return k == KindString
	case InList:
		return k == KindStringSet
	case Between:
		return k == KindDateRange
	}
	return false
}

package types

// Logical is a three-valued logical element
type Logical int8

const (
	False     Logical = 0
	True      Logical = 1
	LogicalNA Logical = -1
)

// LogicalOf converts a Go bool
func LogicalOf(b bool) Logical {
	if b {
		return True
	}
	return False
}

// String returns the host literal
func (l Logical) String() string {
	switch l {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "NA"
	}
}

package order

// Type identifies which processing rule applies to an order.
// Any value other than TypeA, TypeB or TypeC is valid and simply matches no rule.
type Type string

const (
	// TypeA orders are exported to a CSV sink.
	TypeA Type = "A"

	// TypeB orders are classified by the remote classification service.
	TypeB Type = "B"

	// TypeC orders derive their status from the flag.
	TypeC Type = "C"
)

// IsKnown reports whether a processing rule exists for the type.
func (t Type) IsKnown() bool {
	switch t {
	case TypeA, TypeB, TypeC:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

package enums

import "fmt"

// ReviewTarget names the collection a review subtree hangs under.
type ReviewTarget string

const (
	ReviewTargetProducts ReviewTarget = "products"
	ReviewTargetShops    ReviewTarget = "shops"
)

// String implements fmt.Stringer.
func (t ReviewTarget) String() string {
	return string(t)
}

// IsValid reports whether the value is a known ReviewTarget.
func (t ReviewTarget) IsValid() bool {
	return t == ReviewTargetProducts || t == ReviewTargetShops
}

// ParseReviewTarget converts raw input into a ReviewTarget.
func ParseReviewTarget(value string) (ReviewTarget, error) {
	switch ReviewTarget(value) {
	case ReviewTargetProducts:
		return ReviewTargetProducts, nil
	case ReviewTargetShops:
		return ReviewTargetShops, nil
	}
	return "", fmt.Errorf("invalid review target %q", value)
}

// File: services/scheduling/overlap.go
package scheduling

// Overlaps reports whether two half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) share any time. Back-to-back sessions do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

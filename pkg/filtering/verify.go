package filtering

import "strings"

// VerifyResult reports leftover denied lines found in persisted content.
type VerifyResult struct {
	OK        bool
	Found     int
	Offending []string
}

// Verify re-applies the deny-prefix test to every line of content. limit
// caps the number of offending lines returned; zero or less keeps them
// all. Verification never modifies content.
func Verify(content string, limit int) VerifyResult {
	result := VerifyResult{OK: true}
	for _, line := range SplitLines(content) {
		if !IsDenied(line) {
			continue
		}
		result.OK = false
		result.Found++
		if limit <= 0 || len(result.Offending) < limit {
			result.Offending = append(result.Offending, strings.TrimSpace(line))
		}
	}
	return result
}

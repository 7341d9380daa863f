package entity

import (
	"fmt"
	"math"
	"strings"
)

// Slip heuristic outcomes. The check is advisory only: it nudges the
// user, it never gates payment reconciliation.
const (
	SlipCheckSuccess = "success"
	SlipCheckFailed  = "failed"
	SlipCheckError   = "error"
)

// CheckSlipAmount tests whether the expected total appears in the text
// recognized from an uploaded slip image. Thousands separators are
// stripped before matching; the total is matched both as an integer
// string and with two decimals.
func CheckSlipAmount(recognizedText string, expectedTotal float64) string {
	if strings.TrimSpace(recognizedText) == "" {
		return SlipCheckError
	}

	normalized := strings.NewReplacer(",", "", " ", "").Replace(recognizedText)

	candidates := []string{fmt.Sprintf("%.2f", expectedTotal)}
	if expectedTotal == math.Trunc(expectedTotal) {
		candidates = append(candidates, fmt.Sprintf("%d", int64(expectedTotal)))
	}

	for _, candidate := range candidates {
		if strings.Contains(normalized, candidate) {
			return SlipCheckSuccess
		}
	}

	return SlipCheckFailed
}

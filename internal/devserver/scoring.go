package devserver

import "strings"

var highIntentPhrases = []string{
	"buy now", "sign up", "contact sales", "schedule demo", "get started",
	"purchase", "order", "talk to sales", "interested in buying", "ready to buy",
}

// detectHighIntent reports whether a message contains a buying signal.
func detectHighIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range highIntentPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// calculateLeadScore estimates lead quality from the message and contact
// fields, capped at 100.
func calculateLeadScore(message, name, email, phone string) int {
	score := 0
	lower := strings.ToLower(message)
	if len(message) > 30 {
		score += 15
	}
	if strings.Contains(lower, "price") {
		score += 20
	}
	if strings.Contains(lower, "buy") || strings.Contains(lower, "purchase") {
		score += 30
	}
	if name != "" {
		score += 10
	}
	if email != "" {
		score += 15
	}
	if phone != "" {
		score += 20
	}
	if detectHighIntent(message) {
		score += 40
	}
	if score > 100 {
		score = 100
	}
	return score
}

package pulse

import (
	"encoding/json"
	"regexp"
	"strings"
)

const (
	PulseBullish = "bullish"
	PulseBearish = "bearish"
	PulseNeutral = "neutral"
)

const defaultExplanation = "No explanation provided."

// jsonObjectPattern matches the first brace-delimited substring,
// spanning newlines, so a verdict embedded in extra prose is recoverable.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// modelVerdict is the JSON object a model is asked to respond with.
type modelVerdict struct {
	Pulse       string `json:"pulse"`
	Explanation string `json:"explanation"`
}

// parseVerdict extracts a verdict from raw model text. It tries a strict
// JSON parse first, then the first brace-delimited substring. The second
// return value is false when no verdict could be extracted.
func parseVerdict(raw string) (modelVerdict, bool) {
	raw = strings.TrimSpace(raw)

	var v modelVerdict
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return normalizeVerdict(v), true
	}

	if match := jsonObjectPattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &v); err == nil {
			return normalizeVerdict(v), true
		}
	}

	return modelVerdict{}, false
}

// normalizeVerdict lowercases the pulse, maps anything outside the valid
// set to neutral, and fills in a default explanation.
func normalizeVerdict(v modelVerdict) modelVerdict {
	v.Pulse = strings.ToLower(strings.TrimSpace(v.Pulse))
	switch v.Pulse {
	case PulseBullish, PulseBearish, PulseNeutral:
	default:
		v.Pulse = PulseNeutral
	}
	if strings.TrimSpace(v.Explanation) == "" {
		v.Explanation = defaultExplanation
	}
	return v
}

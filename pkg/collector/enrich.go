package collector

import (
	"fmt"
	"strings"
	"time"
)

// riskKeywords flag a line HIGH RISK on case-insensitive substring match.
var riskKeywords = []string{"RM -RF", "DELETE", "DROP TABLE", "SHUTDOWN", "TERMINATE", "WIPE"}

// iconClass is one keyword class. Classes are mutually exclusive; the first
// matching class wins and contributes the only prefix.
type iconClass struct {
	prefix string
	match  func(upper string) bool
}

var iconClasses = []iconClass{
	{
		prefix: "💡 [HA_CMD] ",
		match: func(u string) bool {
			return strings.Contains(u, "CALL_SERVICE") &&
				(strings.Contains(u, "LIGHT") || strings.Contains(u, "SWITCH"))
		},
	},
	{
		prefix: "🌡️ [HA_CMD] ",
		match: func(u string) bool {
			return strings.Contains(u, "CALL_SERVICE") &&
				(strings.Contains(u, "CLIMATE") || strings.Contains(u, "TEMPERATURE"))
		},
	},
	{
		prefix: "🧠 ",
		match: func(u string) bool {
			return strings.Contains(u, "LLM") || strings.Contains(u, "GEMINI") || strings.Contains(u, "CLAUDE")
		},
	},
	{
		prefix: "🏠 ",
		match: func(u string) bool {
			return strings.Contains(u, "HA") || strings.Contains(u, "ENTITY") || strings.Contains(u, "STATE")
		},
	},
	{
		prefix: "🛡️ ",
		match: func(u string) bool {
			return strings.Contains(u, "CONTROL") || strings.Contains(u, "SANDBOX")
		},
	},
}

// Enriched is the result of formatting one log line.
type Enriched struct {
	Formatted string
	HighRisk  bool
}

// enrich prefixes the line with wall-clock time and service name, runs the
// safety audit, and applies at most one icon prefix.
func enrich(serviceName, line string, now time.Time) Enriched {
	upper := strings.ToUpper(line)

	prefix := ""
	highRisk := false

	for _, kw := range riskKeywords {
		if strings.Contains(upper, kw) {
			prefix = "🚨 [HIGH RISK] "
			highRisk = true
			break
		}
	}

	if !highRisk {
		for _, class := range iconClasses {
			if class.match(upper) {
				prefix = class.prefix
				break
			}
		}
	}

	formatted := fmt.Sprintf("[%s] [%s] %s%s", now.Format("15:04:05"), serviceName, prefix, line)
	return Enriched{Formatted: formatted, HighRisk: highRisk}
}

package validate

import "regexp"

var (
	// sqlSignature flags SQL keywords as whole tokens, or a literal angle
	// bracket anywhere. Word boundaries keep ordinary names like
	// "selection" or "creates" from matching.
	sqlSignature = regexp.MustCompile(`(?i)\b(union|select|insert|update|delete|drop|create|alter|exec|script|javascript)\b|[<>]`)

	// xssSignature flags script and event-handler payloads.
	xssSignature = regexp.MustCompile(`(?i)<script|javascript:|onerror=|onload=|eval\(|expression\(`)
)

// Suspicious reports whether a sanitized value matches a SQL or script
// injection signature. A match is a hard reject for the whole request;
// stripping the offending substring and continuing would leave an already
// untrustworthy payload in play.
func Suspicious(value string) bool {
	return sqlSignature.MatchString(value) || xssSignature.MatchString(value)
}

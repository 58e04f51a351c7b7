package pf_err

import (
	"regexp"
	"strings"
)

var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|passwd|seed|candidate|token|secret)(\s*[:=]\s*)\S+`),
	regexp.MustCompile(`hvs\.[A-Za-z0-9_-]+`),
	regexp.MustCompile(`\$(2[aby]|argon2id)\$\S+`),
}

// SanitizeErrorMessage removes seeds, tokens and digests from error text.
func SanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	for _, re := range secretPatterns {
		message = re.ReplaceAllStringFunc(message, func(match string) string {
			if sub := re.FindStringSubmatch(match); len(sub) > 2 && sub[1] != "" && sub[2] != "" {
				return sub[1] + sub[2] + "[REDACTED]"
			}
			return "[REDACTED]"
		})
	}
	return message
}

// SafeErrorSummary creates a safe error summary without sensitive information
func SafeErrorSummary(err error) string {
	if err == nil {
		return "success"
	}

	lowered := strings.ToLower(SanitizeErrorMessage(err))

	switch {
	case strings.Contains(lowered, "permission") || strings.Contains(lowered, "forbidden"):
		return "authentication_required"
	case strings.Contains(lowered, "vault"):
		return "secret_store_error"
	case strings.Contains(lowered, "hash"):
		return "hashing_error"
	case strings.Contains(lowered, "validation") || strings.Contains(lowered, "invalid"):
		return "input_validation_error"
	default:
		return "general_error"
	}
}

package utils

// Truncate shortens s to maxLen and appends an ellipsis. Used to keep
// queries and prompts readable in log lines.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

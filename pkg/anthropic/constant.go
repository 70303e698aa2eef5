package anthropic

import "time"

const (
	// DefaultModel is a fast, low-cost model suited to structured extraction.
	DefaultModel = "claude-3-haiku-20240307"

	defaultAPIURL  = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
	defaultTimeout = 30 * time.Second
)

// Message roles accepted by the Messages API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

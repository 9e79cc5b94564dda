package prompt

// Document is the singleton system-prompt document. Updates overwrite it
// whole; there is no history.
type Document struct {
	SystemPrompt string `json:"systemPrompt"`
}

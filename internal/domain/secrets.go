package domain

import "regexp"

// SecretPattern pairs a compiled heuristic with the human label reported when
// it matches. The matched value itself is never reported.
type SecretPattern struct {
	Pattern *regexp.Regexp
	Label   string
}

// SecretPatterns is the fixed table of secret heuristics. It is deliberately
// a visible configuration list, not inlined logic: adding a pattern must not
// require touching the scanning algorithm.
var SecretPatterns = []SecretPattern{
	{regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`), "GitHub token"},
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{48}`), "OpenAI key"},
	{regexp.MustCompile(`(?i)api[_-]?key\s*=\s*['"][a-zA-Z0-9]{10,}['"]`), "API key"},
	{regexp.MustCompile(`(?i)password\s*=\s*['"][^'"]+['"]`), "Password"},
}

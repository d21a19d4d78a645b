package lint

import "strings"

// DefaultDocsBaseURL is the hosted rule documentation.
const DefaultDocsBaseURL = "https://termlint.dev/docs/rules"

// BuildDocURL constructs a documentation URL for a rule under base.
// An empty base uses DefaultDocsBaseURL, so offline mirrors only need to
// override the base.
func BuildDocURL(base, ruleID string) string {
	if base == "" {
		base = DefaultDocsBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.ToLower(ruleID)
}

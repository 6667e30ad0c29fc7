package models

// SearchRequest is the resolved input of one search invocation.
// It is read-only once the search starts.
type SearchRequest struct {
	Mode    SearchMode
	Keyword string
	Roots   []string
}

// Validate checks that the request can be dispatched.
func (r *SearchRequest) Validate() error {
	if !r.Mode.Valid() {
		return &InvalidArgumentError{Field: "mode", Reason: "unknown search mode " + r.Mode.String()}
	}
	if r.Keyword == "" {
		return &InvalidArgumentError{Field: "keyword", Reason: "keyword is required"}
	}
	if len(r.Roots) == 0 {
		return &InvalidArgumentError{Field: "roots", Reason: "at least one root path is required"}
	}
	for _, root := range r.Roots {
		if root == "" {
			return &InvalidArgumentError{Field: "roots", Reason: "root path cannot be empty"}
		}
	}
	return nil
}

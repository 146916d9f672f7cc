package confluence

import (
	"regexp"

	apierrors "confluencemcp/internal/errors"
)

// MaxQueryLength is the maximum allowed CQL query length
const MaxQueryLength = 2000

var pageIDRegex = regexp.MustCompile(`^\d+$`)

// ValidateCQL validates a CQL query string.
// Syntax is left to Confluence; only presence and length are checked here.
func ValidateCQL(query string) error {
	if query == "" {
		return apierrors.NewValidationError("query", "", "Query parameter is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", "", "query exceeds maximum length")
	}
	return nil
}

// ValidatePageID validates a Confluence page ID.
// Page IDs are numeric content IDs.
func ValidatePageID(pageID string) error {
	if pageID == "" {
		return apierrors.NewValidationError("page_id", "", "page_id parameter is required")
	}
	if !pageIDRegex.MatchString(pageID) {
		return apierrors.NewValidationError("page_id", pageID, "must contain only digits")
	}
	return nil
}

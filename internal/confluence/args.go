package confluence

// SearchContentArgs contains parameters for a CQL content search
type SearchContentArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"CQL query string (e.g. 'type=page AND space=DEV')"`
}

// GetPageArgs contains parameters for retrieving a page by ID
type GetPageArgs struct {
	PageID string `json:"page_id" jsonschema:"required" jsonschema_description:"Numeric Confluence page ID"`
}

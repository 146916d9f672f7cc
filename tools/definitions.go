package tools

// AllTools contains all tool specifications for the Confluence MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "search_content",
		Method:   "SearchContent",
		Title:    "Search Confluence Content",
		Category: "search",
		Description: `Search Confluence content using CQL (Confluence Query Language).

USE WHEN: User asks "find pages about X", "search Confluence for X", or wants to locate content without knowing its page ID.

NOT FOR: Retrieving a specific page whose ID is already known (use get_page instead).

PARAMETERS:
- query: CQL query string (required), e.g. 'type=page AND space=DEV' or 'text ~ "deployment"'

RETURNS: Matching content entries as JSON, including IDs, titles, and excerpts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_page",
		Method:   "GetPage",
		Title:    "Get Confluence Page",
		Category: "read",
		Description: `Retrieve a Confluence page by its numeric ID, including the storage-format body.

USE WHEN: User says "show me page 12345", or a page ID is known from a previous search result.

NOT FOR: Finding pages by topic or title (use search_content instead).

PARAMETERS:
- page_id: Numeric page ID (required)

RETURNS: The full page object as JSON with body.storage expanded.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

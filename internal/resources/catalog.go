// Package resources maps Confluence spaces and pages onto MCP resources.
// The catalog keeps the server's concrete resource set in sync with the
// live space listing and resolves reads for the two recognized URI shapes.
package resources

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"confluencemcp/internal/confluence"
	apierrors "confluencemcp/internal/errors"
	"confluencemcp/metrics"
)

// URI prefixes for the two resource shapes the server recognizes
const (
	SpaceURIPrefix = "confluence://spaces/"
	PageURIPrefix  = "confluence://pages/"
)

// RefKind identifies which URI shape a Ref denotes
type RefKind int

const (
	RefInvalid RefKind = iota
	RefSpace
	RefPage
)

// Ref is a parsed resource reference. Exactly one of Key or ID is set,
// matching the Kind.
type Ref struct {
	Kind RefKind
	Key  string // space key when Kind == RefSpace
	ID   string // page ID when Kind == RefPage
}

// ParseURI parses a resource URI into a Ref. Anything outside
// confluence://spaces/{key} and confluence://pages/{id} is rejected
// with an UnknownResourceError.
func ParseURI(uri string) (Ref, error) {
	switch {
	case strings.HasPrefix(uri, SpaceURIPrefix):
		key := strings.TrimPrefix(uri, SpaceURIPrefix)
		if key == "" || strings.Contains(key, "/") {
			return Ref{}, apierrors.NewUnknownResourceError(uri)
		}
		return Ref{Kind: RefSpace, Key: key}, nil

	case strings.HasPrefix(uri, PageURIPrefix):
		id := strings.TrimPrefix(uri, PageURIPrefix)
		if id == "" || strings.Contains(id, "/") {
			return Ref{}, apierrors.NewUnknownResourceError(uri)
		}
		return Ref{Kind: RefPage, ID: id}, nil
	}
	return Ref{}, apierrors.NewUnknownResourceError(uri)
}

// Catalog serves MCP resource listings and reads backed by a Confluence client
type Catalog struct {
	client *confluence.Client
	logger *slog.Logger
	server *mcp.Server

	mu         sync.Mutex
	registered map[string]struct{}
}

// NewCatalog creates a new resource catalog
func NewCatalog(client *confluence.Client, logger *slog.Logger) *Catalog {
	return &Catalog{
		client:     client,
		logger:     logger,
		registered: make(map[string]struct{}),
	}
}

// List fetches the live space listing and builds one resource descriptor per
// space, preserving the order Confluence returned.
func (c *Catalog) List(ctx context.Context) ([]*mcp.Resource, error) {
	spaces, err := c.client.ListSpaces(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]*mcp.Resource, 0, len(spaces))
	for _, space := range spaces {
		resources = append(resources, &mcp.Resource{
			URI:         SpaceURIPrefix + space.Key,
			Name:        "Space: " + space.Name,
			Description: space.Description.Plain.Value,
			MIMEType:    "application/json",
		})
	}
	return resources, nil
}

// Read resolves a resource URI and returns its content as pretty-printed
// JSON. Unknown URIs fail before any HTTP call is made.
func (c *Catalog) Read(ctx context.Context, uri string) (string, error) {
	ref, err := ParseURI(uri)
	if err != nil {
		metrics.RecordResourceRead("invalid", false)
		return "", err
	}

	var kind string
	var raw []byte
	switch ref.Kind {
	case RefSpace:
		kind = "space"
		raw, err = c.client.ListSpaceContent(ctx, ref.Key)
	case RefPage:
		kind = "page"
		raw, err = c.client.GetPage(ctx, ref.ID)
	default:
		metrics.RecordResourceRead("invalid", false)
		return "", apierrors.NewUnknownResourceError(uri)
	}
	if err != nil {
		metrics.RecordResourceRead(kind, false)
		return "", err
	}

	text, err := confluence.Pretty(raw)
	if err != nil {
		metrics.RecordResourceRead(kind, false)
		return "", err
	}
	metrics.RecordResourceRead(kind, true)
	return text, nil
}

// Register wires the catalog into the MCP server: two URI templates cover
// reads of arbitrary space and page URIs, and a receiving middleware
// refreshes the concrete space resources before each listing is served.
func (c *Catalog) Register(server *mcp.Server) {
	c.server = server

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: SpaceURIPrefix + "{key}",
		Name:        "Confluence space content",
		Description: "Content listing of a Confluence space",
		MIMEType:    "application/json",
	}, c.handleRead)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: PageURIPrefix + "{id}",
		Name:        "Confluence page",
		Description: "A Confluence page with its storage-format body",
		MIMEType:    "application/json",
	}, c.handleRead)

	server.AddReceivingMiddleware(c.refreshMiddleware())
}

// handleRead serves resources/read for both templates and all concrete
// space resources.
func (c *Catalog) handleRead(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	text, err := c.Read(ctx, req.Params.URI)
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     text,
			},
		},
	}, nil
}

// refreshMiddleware re-syncs the space resources from upstream on every
// resources/list request, so listings always reflect the live space set.
func (c *Catalog) refreshMiddleware() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method == "resources/list" {
				metrics.ResourceListings.Inc()
				if err := c.refresh(ctx); err != nil {
					return nil, err
				}
			}
			return next(ctx, method, req)
		}
	}
}

// refresh diffs the live space listing against the currently registered
// resources, adding new spaces and removing vanished ones.
func (c *Catalog) refresh(ctx context.Context) error {
	resources, err := c.List(ctx)
	if err != nil {
		c.logger.Warn("Space listing refresh failed", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[string]struct{}, len(resources))
	for _, resource := range resources {
		next[resource.URI] = struct{}{}
		c.server.AddResource(resource, c.handleRead)
	}

	var remove []string
	for uri := range c.registered {
		if _, ok := next[uri]; !ok {
			remove = append(remove, uri)
		}
	}
	if len(remove) > 0 {
		c.server.RemoveResources(remove...)
	}

	c.registered = next
	return nil
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/mcp/tools"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// Resource URI scheme: json://
// Supported URIs:
//   json://history/{id}
//   json://shape/{id}

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "json://history/{id}",
		Name:        "History Entry",
		Description: "Full raw text of a remembered input. Use json_history_list to discover IDs; tools already return previews.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.8,
		},
	}, s.handleResourceHistory)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "json://shape/{id}",
		Name:        "Entry Shape",
		Description: "Rendered structural shape of a remembered input under the effective display options.",
		MIMEType:    "text/plain",
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.5,
		},
	}, s.handleResourceShape)
}

func (s *Server) handleResourceHistory(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	id, err := parseResourceURI(req.Params.URI, "history")
	if err != nil {
		return nil, err
	}

	entry, ok, err := s.deps.History.Get(id)
	if err != nil {
		return nil, tools.WrapError(err)
	}
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: tools.MimeJSON,
				Text:     entry.Raw,
			},
		},
	}, nil
}

func (s *Server) handleResourceShape(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	id, err := parseResourceURI(req.Params.URI, "shape")
	if err != nil {
		return nil, err
	}

	entry, ok, err := s.deps.History.Get(id)
	if err != nil {
		return nil, tools.WrapError(err)
	}
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	policy, err := s.deps.EffectivePolicy(nil)
	if err != nil {
		return nil, err
	}

	v, err := jsonvalue.DecodeString(entry.Raw)
	if err != nil {
		return nil, tools.WrapError(err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     shape.Render(shape.Infer(v, policy), policy),
			},
		},
	}, nil
}

// parseResourceURI extracts the ID from a json:// URI of the given type.
func parseResourceURI(uri, resourceType string) (string, error) {
	if !strings.HasPrefix(uri, "json://") {
		return "", tools.ErrInvalidInput("invalid URI scheme: expected json://")
	}

	path := strings.TrimPrefix(uri, "json://")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] != resourceType || parts[1] == "" {
		return "", tools.ErrInvalidInput(fmt.Sprintf("%s URI requires an entry ID", resourceType))
	}
	return parts[1], nil
}

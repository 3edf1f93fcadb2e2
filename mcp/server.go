// Package mcp exposes tool recommendations, the catalog and user insights as
// MCP (Model Context Protocol) tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"toolfinder/app"
	"toolfinder/models"
	"toolfinder/services"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the application services and registers them as MCP tools.
type Server struct {
	server *gomcp.Server
	app    *app.App
}

func NewServer(a *app.App) *Server {
	s := &Server{app: a}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: app.Name, Version: app.Version},
		nil,
	)

	s.registerTools()

	return s
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying server so tests can attach other transports.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

type recommendInput struct {
	Query  string `json:"query" jsonschema:"required,the teacher's request in plain language"`
	UserID string `json:"user_id,omitempty" jsonschema:"identifier used to personalize and remember the request"`
}

type recommendOutput struct {
	UserID          string                      `json:"user_id"`
	QueryType       string                      `json:"query_type"`
	ConfidenceScore float64                     `json:"confidence_score"`
	Response        string                      `json:"response"`
	Recommendations []models.ToolRecommendation `json:"recommendations"`
	Alternatives    []models.ToolRecommendation `json:"alternatives,omitempty"`
}

type listToolsInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list tools in this category (e.g. Assessment, Planning)"`
}

type toolsOutput struct {
	Tools []models.ToolRecommendation `json:"tools"`
	Count int                         `json:"count"`
}

type getCategoriesInput struct{}

type searchToolsInput struct {
	Query string `json:"query" jsonschema:"required,words to match against tool names, keywords and descriptions"`
}

type userInsightsInput struct {
	UserID string `json:"user_id" jsonschema:"required,the user whose history is summarized"`
}

type userInsightsOutput struct {
	UserID   string              `json:"user_id"`
	Insights models.UserInsights `json:"insights"`
}

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "recommend_tools",
		Description: "Recommend educational tools for a teacher's request. Returns the detected query type, a response and ranked tools.",
	}, s.handleRecommendTools)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tools",
		Description: "List the educational tools in the catalog, optionally filtered by category.",
	}, s.handleListTools)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_categories",
		Description: "List the tool categories with the number of tools in each.",
	}, s.handleGetCategories)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "search_tools",
		Description: "Search tools by name, keywords and description. Tolerates small misspellings.",
	}, s.handleSearchTools)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_user_insights",
		Description: "Summarize a user's stored interactions: favorite tools, subject, grade level and teaching style.",
	}, s.handleGetUserInsights)
}

func (s *Server) handleRecommendTools(ctx context.Context, _ *gomcp.CallToolRequest, input recommendInput) (*gomcp.CallToolResult, recommendOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return errorResult("query is required"), recommendOutput{}, nil
	}

	result, err := s.app.Chat.Process(ctx, &models.ChatRequest{Query: input.Query, UserID: input.UserID})
	if err != nil {
		return errorResult(fmt.Sprintf("recommending tools: %s", err)), recommendOutput{}, nil
	}

	out := recommendOutput{
		UserID:          result.UserID,
		QueryType:       string(result.QueryType),
		ConfidenceScore: result.ConfidenceScore,
		Response:        result.ResponseText,
		Recommendations: result.Recommendations,
		Alternatives:    result.Alternatives,
	}
	return nil, out, nil
}

func (s *Server) handleListTools(_ context.Context, _ *gomcp.CallToolRequest, input listToolsInput) (*gomcp.CallToolResult, toolsOutput, error) {
	if input.Category == "" {
		tools := s.app.Tools.GetAllTools()
		return nil, toolsOutput{Tools: tools, Count: len(tools)}, nil
	}

	tools, err := s.app.Tools.GetToolsByCategory(input.Category)
	if err != nil {
		if errors.Is(err, services.ErrNoToolsFound) {
			return errorResult(fmt.Sprintf("no tools found for category %q; valid categories: %s",
				input.Category, strings.Join(s.app.Tools.CategoryNames(), ", "))), toolsOutput{}, nil
		}
		return errorResult(fmt.Sprintf("listing tools: %s", err)), toolsOutput{}, nil
	}

	return nil, toolsOutput{Tools: tools, Count: len(tools)}, nil
}

func (s *Server) handleGetCategories(_ context.Context, _ *gomcp.CallToolRequest, _ getCategoriesInput) (*gomcp.CallToolResult, models.CategoriesResponse, error) {
	return nil, s.app.Tools.GetCategories(), nil
}

func (s *Server) handleSearchTools(_ context.Context, _ *gomcp.CallToolRequest, input searchToolsInput) (*gomcp.CallToolResult, toolsOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return errorResult("query is required"), toolsOutput{}, nil
	}

	tools := s.app.Tools.SearchTools(input.Query)
	return nil, toolsOutput{Tools: tools, Count: len(tools)}, nil
}

func (s *Server) handleGetUserInsights(ctx context.Context, _ *gomcp.CallToolRequest, input userInsightsInput) (*gomcp.CallToolResult, userInsightsOutput, error) {
	if input.UserID == "" {
		return errorResult("user_id is required"), userInsightsOutput{}, nil
	}

	result := s.app.Memory.GetUserInsights(ctx, input.UserID)
	if result.Status == models.StatusFailed {
		return errorResult(fmt.Sprintf("getting insights for %s: %s", input.UserID, result.Err)), userInsightsOutput{}, nil
	}

	return nil, userInsightsOutput{UserID: input.UserID, Insights: result.Insights}, nil
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

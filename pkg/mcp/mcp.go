// Package mcp implements the stdio transport that exposes the audit actions
// over the Model Context Protocol, so MCP clients (Claude Desktop, Cursor,
// VS Code) can drive the analyzers.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/user/scaudit-mcp/pkg/audit"
)

const protocolVersion = "2024-11-05"

// Server speaks newline-delimited JSON-RPC over stdin/stdout and delegates
// every tool call to the audit dispatcher.
type Server struct {
	name        string
	version     string
	initialized bool
}

func NewServer() *Server {
	return &Server{name: "scaudit-mcp", version: "0.1.0"}
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type toolDescriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RunStdio serves requests until stdin closes. Logging goes to stderr so
// stdout carries nothing but JSON-RPC frames.
func (s *Server) RunStdio(ctx context.Context) error {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[scaudit-mcp] ")
	log.Println("MCP Smart Contract Auditor Server running on stdio")

	reader := bufio.NewReader(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var req request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handle(ctx, req)
		if resp == nil {
			// Notification, nothing to send back.
			continue
		}

		respBytes, err := json.Marshal(resp)
		if err != nil {
			log.Printf("Failed to marshal response: %v", err)
			continue
		}
		if _, err := writer.WriteString(string(respBytes) + "\n"); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
		writer.Flush()
	}
}

func (s *Server) handle(ctx context.Context, req request) *response {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "notifications/initialized":
		return nil
	default:
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: -32601, Message: "Method not found"},
		}
	}
}

func (s *Server) handleInitialize(req request) *response {
	if s.initialized {
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: -32002, Message: "Already initialized"},
		}
	}
	s.initialized = true

	return &response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{
					"listChanged": false,
				},
			},
			"serverInfo": map[string]interface{}{
				"name":    s.name,
				"version": s.version,
			},
		},
	}
}

func (s *Server) handleToolsList(req request) *response {
	defs := audit.Actions()
	tools := make([]toolDescriptor, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, toolDescriptor{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}

	return &response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  map[string]interface{}{"tools": tools},
	}
}

// handleToolsCall runs one audit action. Action-level failures (missing file,
// tool not installed, timeout) are returned as text content, not as JSON-RPC
// errors; only malformed requests use the protocol error channel.
func (s *Server) handleToolsCall(ctx context.Context, req request) *response {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return &response{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error:   &rpcError{Code: -32602, Message: "Invalid params"},
			}
		}
	}
	if params.Name == "" {
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: -32602, Message: "Missing tool name"},
		}
	}

	result := audit.Execute(ctx, params.Name, params.Arguments)
	text := audit.RenderText(result)

	return &response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []textContent{{Type: "text", Text: text}},
		},
	}
}

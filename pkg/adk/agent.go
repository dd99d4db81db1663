package adk

import (
	"context"
	"fmt"
)

// Tool represents an executable action for the agent
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error)
	Schema() map[string]interface{} // JSON schema for arguments
}

// ToolCall represents a request from the LLM to execute a tool
type ToolCall struct {
	ToolName string
	Args     map[string]interface{}
}

// Message represents a chat message
type Message struct {
	Role    string // "user", "model", "system"
	Content string
}

// LLMProvider defines the interface for different AI models
type LLMProvider interface {
	GenerateResponse(ctx context.Context, history []Message, tools []Tool) (string, *ToolCall, error)
	ListModels(ctx context.Context) ([]string, error)
}

// Agent drives an audit session: it forwards user input to the model and
// executes any audit tool the model asks for, feeding the result back.
type Agent struct {
	llm          LLMProvider
	tools        map[string]Tool
	history      []Message
	systemPrompt string
}

// NewAgent creates a new agent with the given LLM provider
func NewAgent(llm LLMProvider) *Agent {
	return &Agent{
		llm:   llm,
		tools: make(map[string]Tool),
	}
}

// RegisterTool adds a tool to the agent's registry
func (a *Agent) RegisterTool(t Tool) {
	a.tools[t.Name()] = t
}

// SetSystemPrompt sets the instructions prepended to the conversation.
func (a *Agent) SetSystemPrompt(prompt string) {
	a.systemPrompt = prompt
}

// Chat sends a message to the agent and returns the response
func (a *Agent) Chat(ctx context.Context, input string, progress func(string)) (string, error) {
	if a.systemPrompt != "" && len(a.history) == 0 {
		a.history = append(a.history, Message{Role: "system", Content: a.systemPrompt})
	}
	a.history = append(a.history, Message{Role: "user", Content: input})

	// Generate response (loop for tool calls)
	for {
		toolList := make([]Tool, 0, len(a.tools))
		for _, t := range a.tools {
			toolList = append(toolList, t)
		}

		respText, toolCall, err := a.llm.GenerateResponse(ctx, a.history, toolList)
		if err != nil {
			return "", err
		}

		// If the model just replied with text, we are done
		if toolCall == nil {
			a.history = append(a.history, Message{Role: "model", Content: respText})
			return respText, nil
		}

		Debugf("Executing tool: %s with args: %v", toolCall.ToolName, toolCall.Args)

		// Record the model's intent to call the tool
		a.history = append(a.history, Message{
			Role:    "model",
			Content: fmt.Sprintf("I will call tool %s with args %v", toolCall.ToolName, toolCall.Args),
		})

		tool, exists := a.tools[toolCall.ToolName]
		if !exists {
			a.history = append(a.history, Message{
				Role:    "function",
				Content: fmt.Sprintf("Error: Tool %s not found", toolCall.ToolName),
			})
			continue
		}

		result, err := tool.Execute(ctx, toolCall.Args, progress)
		if err != nil {
			result = fmt.Sprintf("Error executing tool: %v", err)
		}

		a.history = append(a.history, Message{
			Role:    "function",
			Content: fmt.Sprintf("Tool %s returned: %s", toolCall.ToolName, result),
		})

		// Loop back to give the result to the LLM
	}
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared/constant"
	"todoapi/shared/logger"
	"todoapi/shared/validator"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Tool argument shapes mirror the HTTP request payloads one to one.
type GetTodoArgs struct {
	TodoID int64 `json:"todo_id"`
}

type CreateTodoArgs struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed,omitempty"`
}

type UpdateTodoArgs struct {
	TodoID    int64   `json:"todo_id"`
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type DeleteTodoArgs struct {
	TodoID int64 `json:"todo_id"`
}

type EmptyArgs struct{}

type Server struct {
	Config  *config.Config
	service service.Todo
	otel    otel.Otel
	server  *mcp.Server
}

func New(cfg *config.Config, svc service.Todo, otl otel.Otel) *Server {
	s := &Server{
		Config:  cfg,
		service: svc,
		otel:    otl,
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    cfg.App.Name,
		Version: constant.AppVersion,
	}, nil)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_all_todos",
		Description: "Retrieve all todo items.",
	}, s.GetAllTodos)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_todo",
		Description: "Retrieve a single todo item by its id.",
	}, s.GetTodo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_todo",
		Description: "Create a new todo item.",
	}, s.CreateTodo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_todo",
		Description: "Update an existing todo item. Absent fields are left untouched.",
	}, s.UpdateTodo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_todo",
		Description: "Delete a todo item by its id.",
	}, s.DeleteTodo)
}

// Serve connects the server to the transport and blocks until the session
// ends or the context is cancelled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	log.Info().Str("name", s.Config.App.Name).Msg("Starting up MCP server.")

	session, err := s.server.Connect(ctx, transport)
	if err != nil {
		return fmt.Errorf("connecting MCP server: %w", err)
	}

	sessionDone := make(chan error, 1)

	go func() {
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		log.Info().Msg("MCP session finished.")

		return err
	case <-ctx.Done():
		log.Info().Msg("MCP server shutting down.")

		session.Close()

		return ctx.Err()
	}
}

func (s *Server) GetAllTodos(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[EmptyArgs]) (*mcp.CallToolResultFor[any], error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelToolScopeName, constant.OtelToolScopeName+".GetAllTodos")
	defer scope.End()

	todos, err := s.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	return jsonResult(todos)
}

func (s *Server) GetTodo(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[GetTodoArgs]) (*mcp.CallToolResultFor[any], error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelToolScopeName, constant.OtelToolScopeName+".GetTodo")
	defer scope.End()

	todo, err := s.service.Get(ctx, params.Arguments.TodoID)
	if err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	return jsonResult(todo)
}

func (s *Server) CreateTodo(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[CreateTodoArgs]) (*mcp.CallToolResultFor[any], error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelToolScopeName, constant.OtelToolScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{
		Content:   params.Arguments.Content,
		Completed: params.Arguments.Completed,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	todo, err := s.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	return jsonResult(todo)
}

func (s *Server) UpdateTodo(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[UpdateTodoArgs]) (*mcp.CallToolResultFor[any], error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelToolScopeName, constant.OtelToolScopeName+".UpdateTodo")
	defer scope.End()

	req := dto.UpdateTodoRequest{
		Content:   params.Arguments.Content,
		Completed: params.Arguments.Completed,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	todo, err := s.service.Update(ctx, params.Arguments.TodoID, req)
	if err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	return jsonResult(todo)
}

func (s *Server) DeleteTodo(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[DeleteTodoArgs]) (*mcp.CallToolResultFor[any], error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelToolScopeName, constant.OtelToolScopeName+".DeleteTodo")
	defer scope.End()

	if err := s.service.Delete(ctx, params.Arguments.TodoID); err != nil {
		scope.TraceError(err)

		return errorResult(err), nil
	}

	return textResult(fmt.Sprintf("Todo with id %d deleted", params.Arguments.TodoID)), nil
}

func jsonResult(payload any) (*mcp.CallToolResultFor[any], error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return errorResult(err), nil
	}

	return textResult(string(encoded)), nil
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

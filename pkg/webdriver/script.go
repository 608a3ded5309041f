package webdriver

import (
	"context"
	"net/http"
)

// Execute runs script as a function body in the page, synchronously, and
// returns whatever JSON-compatible value its return statement produced.
// Script text and arguments pass through unexamined.
func (s *Session) Execute(ctx context.Context, script string, args ...any) (any, error) {
	return s.execute(ctx, "sync", script, args)
}

// ExecuteAsync runs script as a function body whose final argument is a
// callback; the value passed to the callback becomes the result.
func (s *Session) ExecuteAsync(ctx context.Context, script string, args ...any) (any, error) {
	return s.execute(ctx, "async", script, args)
}

func (s *Session) execute(ctx context.Context, mode, script string, args []any) (any, error) {
	if args == nil {
		args = []any{}
	}
	body := map[string]any{"script": script, "args": args}
	return s.c.Do(ctx, http.MethodPost, s.path("execute", mode), body)
}

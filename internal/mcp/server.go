// Package mcp exposes the ticket operations as MCP tools so local AI
// clients can manage the same collection the web views do.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tickify/tickify/internal/domain/ticket"
)

const serverInstructions = `Tickify tracks a single user's support tickets.

A Ticket has an integer id, a title, an optional description (at least
10 characters when present), a status (open, in_progress or closed) and
a creation timestamp. Ids and timestamps are assigned by the server.

Tools:
- list_tickets: the full collection in creation order.
- create_ticket: title is required; status defaults to open.
- update_ticket: replaces title, description and status of an existing id.
- delete_ticket: removes an id; deleting an unknown id is a no-op.
- get_ticket_stats: total / open / resolved counts (in_progress tickets
  count toward total only).

Everything is stored locally; there is no remote backend and no auth.`

// TicketService defines the ticket operations needed by the tools.
type TicketService interface {
	Create(ctx context.Context, req ticket.CreateRequest) (*ticket.Ticket, error)
	Update(ctx context.Context, req ticket.UpdateRequest) (*ticket.Ticket, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]ticket.Ticket, error)
	Stats(ctx context.Context) (ticket.Stats, error)
}

// NewServer creates an MCP server with the ticket tools registered.
func NewServer(tickets TicketService, logger *slog.Logger) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "tickify",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	server.AddReceivingMiddleware(loggingMiddleware(logger))
	registerTools(server, tickets)

	return server
}

func loggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			result, err := next(ctx, method, req)
			if logger != nil && logger.Enabled(ctx, slog.LevelDebug) {
				if err != nil {
					logger.Debug("mcp request", "method", method, "error", err)
				} else {
					logger.Debug("mcp request", "method", method)
				}
			}
			return result, err
		}
	}
}

package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tickify/tickify/internal/domain/ticket"
)

// CreateTicketParams describes the create_ticket input.
type CreateTicketParams struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UpdateTicketParams describes the update_ticket input.
type UpdateTicketParams struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// DeleteTicketParams describes the delete_ticket input.
type DeleteTicketParams struct {
	ID int64 `json:"id"`
}

// DeleteTicketResult reports the outcome of delete_ticket.
type DeleteTicketResult struct {
	ID int64 `json:"id"`
}

// ListTicketsParams is empty; list_tickets takes no arguments.
type ListTicketsParams struct{}

// ListTicketsResult holds the full collection.
type ListTicketsResult struct {
	Tickets []ticket.Ticket `json:"tickets"`
}

// StatsParams is empty; get_ticket_stats takes no arguments.
type StatsParams struct{}

type toolHandlers struct {
	tickets TicketService
}

func registerTools(server *sdkmcp.Server, tickets TicketService) {
	h := &toolHandlers{tickets: tickets}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_ticket",
		Description: "Create a new support ticket (status defaults to open)",
	}, h.createTicket)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_ticket",
		Description: "Replace the title, description and status of an existing ticket",
	}, h.updateTicket)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_ticket",
		Description: "Delete a ticket by id (unknown ids are a no-op)",
	}, h.deleteTicket)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tickets",
		Description: "List all tickets in creation order",
	}, h.listTickets)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_ticket_stats",
		Description: "Get total, open and resolved ticket counts",
	}, h.ticketStats)
}

func (h *toolHandlers) createTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateTicketParams) (*sdkmcp.CallToolResult, *ticket.Ticket, error) {
	status := ticket.Status(in.Status)
	if in.Status == "" {
		status = ticket.StatusOpen
	}
	created, err := h.tickets.Create(ctx, ticket.CreateRequest{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, created, nil
}

func (h *toolHandlers) updateTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateTicketParams) (*sdkmcp.CallToolResult, *ticket.Ticket, error) {
	updated, err := h.tickets.Update(ctx, ticket.UpdateRequest{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      ticket.Status(in.Status),
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, updated, nil
}

func (h *toolHandlers) deleteTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteTicketParams) (*sdkmcp.CallToolResult, *DeleteTicketResult, error) {
	if err := h.tickets.Delete(ctx, in.ID); err != nil {
		return nil, nil, err
	}
	return nil, &DeleteTicketResult{ID: in.ID}, nil
}

func (h *toolHandlers) listTickets(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListTicketsParams) (*sdkmcp.CallToolResult, *ListTicketsResult, error) {
	all, err := h.tickets.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &ListTicketsResult{Tickets: all}, nil
}

func (h *toolHandlers) ticketStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ StatsParams) (*sdkmcp.CallToolResult, *ticket.Stats, error) {
	stats, err := h.tickets.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &stats, nil
}

package eventbrite

import (
	"context"
	"time"
)

// NewTicketParams are the parameters of ticket_new.
// IsDonation and IncludeFee are sent as false when nil.
type NewTicketParams struct {
	EventID            *int
	IsDonation         *bool
	Name               *string
	Description        *string
	Price              *float64
	Quantity           *int
	StartSales         *time.Time
	EndSales           *time.Time
	IncludeFee         *bool
	MinTicketsPerOrder *int
	MaxTicketsPerOrder *int
}

// UpdateTicketParams are the parameters of ticket_update.
type UpdateTicketParams struct {
	TicketID           *int
	IsDonation         *bool
	Name               *string
	Description        *string
	Price              *float64
	Quantity           *int
	StartSales         *time.Time
	EndSales           *time.Time
	IncludeFee         *bool
	MinTicketsPerOrder *int
	MaxTicketsPerOrder *int
}

// orFalse returns *b, or false when b is nil.
func orFalse(b *bool) bool {
	return b != nil && *b
}

// NewTicket adds a ticket type to an event.
func (c *Client) NewTicket(ctx context.Context, p *NewTicketParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodTicketNew, []Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Value: opt(p.EventID), Required: true},
		{Name: "is_donation", Wire: "is_donation", Type: Boolean, Value: orFalse(p.IsDonation), Transform: BoolOneZero},
		{Name: "name", Wire: "name", Type: Text, Value: opt(p.Name), Required: true},
		{Name: "description", Wire: "description", Type: Text, Value: opt(p.Description)},
		{Name: "price", Wire: "price", Type: Float, Value: opt(p.Price), Required: true},
		{Name: "quantity", Wire: "quantity", Type: Integer, Value: opt(p.Quantity), Required: true},
		{Name: "start_sales", Wire: "start_sales", Type: Timestamp, Value: opt(p.StartSales), Transform: FormatTimestamp},
		{Name: "end_sales", Wire: "end_sales", Type: Timestamp, Value: opt(p.EndSales), Transform: FormatTimestamp},
		{Name: "include_fee", Wire: "include_fee", Type: Boolean, Value: orFalse(p.IncludeFee), Transform: BoolOneZero},
		{Name: "min_tickets_per_order", Wire: "min", Type: Integer, Value: opt(p.MinTicketsPerOrder)},
		{Name: "max_tickets_per_order", Wire: "max", Type: Integer, Value: opt(p.MaxTicketsPerOrder)},
	})
}

// UpdateTicket changes a ticket type. Price and Quantity are always required.
func (c *Client) UpdateTicket(ctx context.Context, p *UpdateTicketParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodTicketUpdate, []Field{
		{Name: "ticket_id", Wire: "ticket_id", Type: Integer, Value: opt(p.TicketID), Required: true},
		{Name: "is_donation", Wire: "is_donation", Type: Boolean, Value: opt(p.IsDonation), Transform: BoolOneZero},
		{Name: "name", Wire: "name", Type: Text, Value: opt(p.Name)},
		{Name: "description", Wire: "description", Type: Text, Value: opt(p.Description)},
		{Name: "price", Wire: "price", Type: Float, Value: opt(p.Price), Required: true},
		{Name: "quantity", Wire: "quantity", Type: Integer, Value: opt(p.Quantity), Required: true},
		{Name: "start_sales", Wire: "start_sales", Type: Timestamp, Value: opt(p.StartSales), Transform: FormatTimestamp},
		{Name: "end_sales", Wire: "end_sales", Type: Timestamp, Value: opt(p.EndSales), Transform: FormatTimestamp},
		{Name: "include_fee", Wire: "include_fee", Type: Boolean, Value: opt(p.IncludeFee), Transform: BoolOneZero},
		{Name: "min_tickets_per_order", Wire: "min", Type: Integer, Value: opt(p.MinTicketsPerOrder)},
		{Name: "max_tickets_per_order", Wire: "max", Type: Integer, Value: opt(p.MaxTicketsPerOrder)},
	})
}

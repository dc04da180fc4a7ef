package eventbrite

import (
	"context"
	"strconv"
	"time"
)

// NewDiscountParams are the parameters of discount_new.
// Exactly one of AmountOff and PercentOff must be set.
type NewDiscountParams struct {
	EventID           *int
	Code              *string
	AmountOff         *float64
	PercentOff        *float64
	TicketIDs         []int // limits the discount to these tickets
	QuantityAvailable *int
	StartDate         *time.Time
	EndDate           *time.Time
}

// UpdateDiscountParams are the parameters of discount_update.
// Exactly one of AmountOff and PercentOff must be set.
type UpdateDiscountParams struct {
	DiscountID        *int
	Code              *string
	AmountOff         *float64
	PercentOff        *float64
	TicketIDs         []int
	QuantityAvailable *int
	StartDate         *time.Time
	EndDate           *time.Time
}

var discountAmount = ExactlyOneOf("discount amount", "amount_off", "percent_off")

// discountFields are shared by discount_new and discount_update.
func discountFields(code *string, amountOff, percentOff *float64, tickets []int, quantity *int, start, end *time.Time) []Field {
	return []Field{
		{Name: "discount_code", Wire: "code", Type: Text, Value: opt(code), Required: true},
		{Name: "amount_off", Wire: "amount_off", Type: Float, Value: opt(amountOff)},
		{Name: "percent_off", Wire: "percent_off", Type: Float, Value: opt(percentOff)},
		{Name: "tickets", Wire: "tickets", Type: TextSequence, Value: idList(tickets), Transform: CommaJoined},
		{Name: "quantity_available", Wire: "quantity_available", Type: Integer, Value: opt(quantity)},
		{Name: "start_date", Wire: "start_date", Type: Timestamp, Value: opt(start), Transform: FormatTimestamp, Required: true},
		{Name: "end_date", Wire: "end_date", Type: Timestamp, Value: opt(end), Transform: FormatTimestamp, Required: true},
	}
}

// idList renders ids as text, keeping nil as absent.
func idList(ids []int) any {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}

// NewDiscount creates a discount code for an event.
func (c *Client) NewDiscount(ctx context.Context, p *NewDiscountParams) (any, error) {
	p = orEmpty(p)
	fields := append([]Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Value: opt(p.EventID), Required: true},
	}, discountFields(p.Code, p.AmountOff, p.PercentOff, p.TicketIDs, p.QuantityAvailable, p.StartDate, p.EndDate)...)
	return c.call(ctx, MethodDiscountNew, fields, discountAmount)
}

// UpdateDiscount changes an existing discount code.
func (c *Client) UpdateDiscount(ctx context.Context, p *UpdateDiscountParams) (any, error) {
	p = orEmpty(p)
	fields := append([]Field{
		{Name: "discount_id", Wire: "discount_id", Type: Integer, Value: opt(p.DiscountID), Required: true},
	}, discountFields(p.Code, p.AmountOff, p.PercentOff, p.TicketIDs, p.QuantityAvailable, p.StartDate, p.EndDate)...)
	return c.call(ctx, MethodDiscountUpdate, fields, discountAmount)
}

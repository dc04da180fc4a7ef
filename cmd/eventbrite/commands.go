package main

import (
	"context"

	"github.com/broady/eventbrite"
)

// nonZero returns nil for an unset flag so the parameter is omitted.
func nonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

type EventCmd struct {
	Get       EventGetCmd       `cmd:"" help:"Fetch one event."`
	Attendees EventAttendeesCmd `cmd:"" help:"List the attendees of an event."`
	Discounts EventDiscountsCmd `cmd:"" help:"List the discount codes of an event."`
	Search    EventSearchCmd    `cmd:"" help:"Search public events."`
}

type EventGetCmd struct {
	ID int `arg:"" help:"Event id."`
}

func (c *EventGetCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.GetEvent(ctx, &eventbrite.GetEventParams{EventID: &c.ID})
	})
}

type EventAttendeesCmd struct {
	ID           int  `arg:"" help:"Event id."`
	Count        int  `help:"Page size."`
	Page         int  `help:"Page number."`
	NoProfile    bool `help:"Omit attendee profiles."`
	NoAnswers    bool `help:"Omit survey answers."`
	NoAddress    bool `help:"Omit addresses."`
	FullBarcodes bool `help:"Show full barcodes."`
}

func (c *EventAttendeesCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.ListEventAttendees(ctx, &eventbrite.ListEventAttendeesParams{
			EventID:          &c.ID,
			Count:            nonZero(c.Count),
			Page:             nonZero(c.Page),
			ExcludeProfile:   c.NoProfile,
			ExcludeAnswers:   c.NoAnswers,
			ExcludeAddress:   c.NoAddress,
			ShowFullBarcodes: &c.FullBarcodes,
		})
	})
}

type EventDiscountsCmd struct {
	ID int `arg:"" help:"Event id."`
}

func (c *EventDiscountsCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.ListEventDiscounts(ctx, &eventbrite.ListEventDiscountsParams{EventID: &c.ID})
	})
}

type EventSearchCmd struct {
	Keywords   string   `arg:"" optional:"" help:"Search keywords."`
	Category   []string `help:"Restrict to categories." sep:","`
	City       string   `help:"City."`
	Country    string   `help:"Country code."`
	Within     int      `help:"Distance from the location."`
	WithinUnit string   `help:"Distance unit (M or K)." name:"within-unit"`
	Date       string   `help:"Date filter in the API's syntax, e.g. 'This Week'."`
	Sort       string   `help:"Sort by id, date, name or city."`
	Max        int      `help:"Maximum number of events."`
	Page       int      `help:"Page number."`
	CountOnly  bool     `help:"Only return the number of matches."`
}

func (c *EventSearchCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.SearchEvents(ctx, &eventbrite.SearchEventsParams{
			Keywords:       nonZero(c.Keywords),
			Categories:     c.Category,
			City:           nonZero(c.City),
			CountryCode:    nonZero(c.Country),
			WithinDistance: nonZero(c.Within),
			WithinUnit:     nonZero(c.WithinUnit),
			DateStart:      nonZero(c.Date),
			SortBy:         nonZero(c.Sort),
			MaxEvents:      nonZero(c.Max),
			Page:           nonZero(c.Page),
			CountOnly:      &c.CountOnly,
		})
	})
}

type OrganizerCmd struct {
	Events OrganizerEventsCmd `cmd:"" help:"List the events of an organizer."`
}

type OrganizerEventsCmd struct {
	ID int `arg:"" help:"Organizer id."`
}

func (c *OrganizerEventsCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.ListOrganizerEvents(ctx, &eventbrite.ListOrganizerEventsParams{OrganizerID: &c.ID})
	})
}

type UserCmd struct {
	Get     UserGetCmd     `cmd:"" help:"Fetch a user by id or email."`
	Tickets UserTicketsCmd `cmd:"" help:"List the tickets of the authenticated user."`
}

type UserGetCmd struct {
	ID    int    `help:"User id."`
	Email string `help:"User email."`
}

func (c *UserGetCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.GetUser(ctx, &eventbrite.GetUserParams{UserID: nonZero(c.ID), Email: nonZero(c.Email)})
	})
}

type UserTicketsCmd struct{}

func (c *UserTicketsCmd) Run(g *Globals) error {
	return g.run(func(ctx context.Context, client *eventbrite.Client) (any, error) {
		return client.ListUserTickets(ctx)
	})
}

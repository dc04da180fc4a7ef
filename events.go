package eventbrite

import (
	"context"
	"time"
)

// DefaultTimezone is used by NewEvent when no timezone is given.
const DefaultTimezone = "GMT-08"

const (
	eventStatusCheck    = "oneof=draft live"
	searchCategoryCheck = "dive,oneof=conference conventions entertainment fundraisers meetings other performances reunions sales seminars social sports tradeshows travel religion fairs food music recreation"
	withinUnitCheck     = "oneof=M K"
	searchSortCheck     = "oneof=id date name city"
)

// EventStyle holds the optional page customization shared by event_new and event_update.
type EventStyle struct {
	CustomHeader             *string
	CustomFooter             *string
	BackgroundColor          *string
	TextColor                *string
	LinkColor                *string
	TitleTextColor           *string
	BoxBackgroundColor       *string
	BoxTextColor             *string
	BoxBorderColor           *string
	BoxHeaderBackgroundColor *string
	BoxHeaderTextColor       *string
}

func (s *EventStyle) fields() []Field {
	return []Field{
		{Name: "custom_header", Wire: "custom_header", Type: Text, Value: opt(s.CustomHeader)},
		{Name: "custom_footer", Wire: "custom_footer", Type: Text, Value: opt(s.CustomFooter)},
		{Name: "background_color", Wire: "background_color", Type: Text, Value: opt(s.BackgroundColor)},
		{Name: "text_color", Wire: "text_color", Type: Text, Value: opt(s.TextColor)},
		{Name: "link_color", Wire: "link_color", Type: Text, Value: opt(s.LinkColor)},
		{Name: "title_text_color", Wire: "title_text_color", Type: Text, Value: opt(s.TitleTextColor)},
		{Name: "box_background_color", Wire: "box_background_color", Type: Text, Value: opt(s.BoxBackgroundColor)},
		{Name: "box_text_color", Wire: "box_text_color", Type: Text, Value: opt(s.BoxTextColor)},
		{Name: "box_border_color", Wire: "box_border_color", Type: Text, Value: opt(s.BoxBorderColor)},
		{Name: "box_header_background_color", Wire: "box_header_background_color", Type: Text, Value: opt(s.BoxHeaderBackgroundColor)},
		{Name: "box_header_text_color", Wire: "box_header_text_color", Type: Text, Value: opt(s.BoxHeaderTextColor)},
	}
}

type CopyEventParams struct {
	EventID *int
	Name    *string
}

type GetEventParams struct {
	EventID *int
}

// ListEventAttendeesParams are the parameters of event_list_attendees.
// The Exclude flags drop sections from each attendee record.
type ListEventAttendeesParams struct {
	EventID          *int
	Count            *int
	Page             *int
	ExcludeProfile   bool
	ExcludeAnswers   bool
	ExcludeAddress   bool
	ShowFullBarcodes *bool // sent as false when nil
}

type ListEventDiscountsParams struct {
	EventID *int
}

// NewEventParams are the parameters of event_new.
//
// Timezone defaults to DefaultTimezone and Public to false; both are always sent.
type NewEventParams struct {
	Title           *string
	Description     *string
	StartDate       *time.Time
	EndDate         *time.Time
	Timezone        *string
	Public          *bool
	PersonalizedURL *string
	VenueID         *int
	OrganizerID     *int
	Capacity        *int
	Currency        *string
	Status          *string // "draft" or "live"
	EventStyle
}

// UpdateEventParams are the parameters of event_update.
// Unlike NewEventParams, nothing besides EventID is sent unless set.
//
// This differs from the legacy Python client, which always sent timezone
// (GMT-08 unless given) and privacy (0 unless given) and so reset both on
// every update. Set Timezone and Public explicitly to get that behavior.
type UpdateEventParams struct {
	EventID         *int
	Title           *string
	Description     *string
	StartDate       *time.Time
	EndDate         *time.Time
	Timezone        *string
	Public          *bool
	PersonalizedURL *string
	VenueID         *int
	OrganizerID     *int
	Capacity        *int
	Currency        *string
	Status          *string
	EventStyle
}

// SearchEventsParams are the parameters of event_search.
//
// The date filters accept the API's own syntax (e.g. "This Week" or
// "2012-01-01 2012-02-01") and are passed through unchanged.
type SearchEventsParams struct {
	Keywords       *string
	Categories     []string
	Address        *string
	City           *string
	Region         *string
	PostalCode     *string
	CountryCode    *string
	WithinDistance *int
	WithinUnit     *string // "M" or "K"
	Latitude       *float64
	Longitude      *float64
	DateStart      *string
	DateCreated    *string
	DateModified   *string
	OrganizerName  *string
	MaxEvents      *int
	CountOnly      *bool // sent as false when nil
	SortBy         *string
	Page           *int
	SinceID        *int
	TrackingLink   *string
}

// CopyEvent duplicates an event under a new name.
func (c *Client) CopyEvent(ctx context.Context, p *CopyEventParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodEventCopy, []Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Value: opt(p.EventID), Required: true},
		{Name: "event_name", Wire: "event_name", Type: Text, Value: opt(p.Name), Required: true},
	})
}

// GetEvent fetches one event.
func (c *Client) GetEvent(ctx context.Context, p *GetEventParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodEventGet, []Field{
		{Name: "event_id", Wire: "id", Type: Integer, Value: opt(p.EventID), Required: true},
	})
}

// ListEventAttendees lists the attendees of an event.
func (c *Client) ListEventAttendees(ctx context.Context, p *ListEventAttendeesParams) (any, error) {
	p = orEmpty(p)
	var exclude []string
	if p.ExcludeProfile {
		exclude = append(exclude, "profile")
	}
	if p.ExcludeAnswers {
		exclude = append(exclude, "answers")
	}
	if p.ExcludeAddress {
		exclude = append(exclude, "address")
	}

	return c.call(ctx, MethodEventListAttendees, []Field{
		{Name: "event_id", Wire: "id", Type: Integer, Value: opt(p.EventID), Required: true},
		{Name: "count", Wire: "count", Type: Integer, Value: opt(p.Count)},
		{Name: "page", Wire: "page", Type: Integer, Value: opt(p.Page)},
		{Name: "do_not_display", Wire: "do_not_display", Type: TextSequence, Value: seq(exclude), Transform: CommaJoined},
		{Name: "show_full_barcodes", Wire: "show_full_barcodes", Type: Boolean, Value: orFalse(p.ShowFullBarcodes), Transform: BoolTrueFalse},
	})
}

// ListEventDiscounts lists the discount codes of an event.
func (c *Client) ListEventDiscounts(ctx context.Context, p *ListEventDiscountsParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodEventListDiscounts, []Field{
		{Name: "event_id", Wire: "id", Type: Integer, Value: opt(p.EventID), Required: true},
	})
}

// NewEvent creates an event.
func (c *Client) NewEvent(ctx context.Context, p *NewEventParams) (any, error) {
	p = orEmpty(p)
	timezone := DefaultTimezone
	if p.Timezone != nil && *p.Timezone != "" {
		timezone = *p.Timezone
	}

	fields := []Field{
		{Name: "title", Wire: "title", Type: Text, Value: opt(p.Title), Required: true},
		{Name: "description", Wire: "description", Type: Text, Value: opt(p.Description)},
		{Name: "start_date", Wire: "start_date", Type: Timestamp, Value: opt(p.StartDate), Transform: FormatTimestamp, Required: true},
		{Name: "end_date", Wire: "end_date", Type: Timestamp, Value: opt(p.EndDate), Transform: FormatTimestamp, Required: true},
		{Name: "timezone", Wire: "timezone", Type: Text, Value: timezone, Required: true},
		{Name: "public", Wire: "privacy", Type: Boolean, Value: orFalse(p.Public), Transform: BoolOneZero},
		{Name: "personalized_url", Wire: "personalized_url", Type: Text, Value: opt(p.PersonalizedURL)},
		{Name: "venue_id", Wire: "venue_id", Type: Integer, Value: opt(p.VenueID)},
		{Name: "organizer_id", Wire: "organizer_id", Type: Integer, Value: opt(p.OrganizerID)},
		{Name: "capacity", Wire: "capacity", Type: Integer, Value: opt(p.Capacity)},
		{Name: "currency", Wire: "currency", Type: Text, Value: opt(p.Currency)},
		{Name: "status", Wire: "status", Type: Text, Value: opt(p.Status), Check: eventStatusCheck},
	}
	return c.call(ctx, MethodEventNew, append(fields, p.EventStyle.fields()...))
}

// UpdateEvent changes an event.
func (c *Client) UpdateEvent(ctx context.Context, p *UpdateEventParams) (any, error) {
	p = orEmpty(p)
	fields := []Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Value: opt(p.EventID), Required: true},
		{Name: "title", Wire: "title", Type: Text, Value: opt(p.Title)},
		{Name: "description", Wire: "description", Type: Text, Value: opt(p.Description)},
		{Name: "start_date", Wire: "start_date", Type: Timestamp, Value: opt(p.StartDate), Transform: FormatTimestamp},
		{Name: "end_date", Wire: "end_date", Type: Timestamp, Value: opt(p.EndDate), Transform: FormatTimestamp},
		{Name: "timezone", Wire: "timezone", Type: Text, Value: opt(p.Timezone)},
		{Name: "public", Wire: "privacy", Type: Boolean, Value: opt(p.Public), Transform: BoolOneZero},
		{Name: "personalized_url", Wire: "personalized_url", Type: Text, Value: opt(p.PersonalizedURL)},
		{Name: "venue_id", Wire: "venue_id", Type: Integer, Value: opt(p.VenueID)},
		{Name: "organizer_id", Wire: "organizer_id", Type: Integer, Value: opt(p.OrganizerID)},
		{Name: "capacity", Wire: "capacity", Type: Integer, Value: opt(p.Capacity)},
		{Name: "currency", Wire: "currency", Type: Text, Value: opt(p.Currency)},
		{Name: "status", Wire: "status", Type: Text, Value: opt(p.Status), Check: eventStatusCheck},
	}
	return c.call(ctx, MethodEventUpdate, append(fields, p.EventStyle.fields()...))
}

// SearchEvents searches public events.
func (c *Client) SearchEvents(ctx context.Context, p *SearchEventsParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodEventSearch, []Field{
		{Name: "keywords", Wire: "keywords", Type: Text, Value: opt(p.Keywords)},
		{Name: "categories", Wire: "category", Type: TextSequence, Value: seq(p.Categories), Transform: CommaJoined, Check: searchCategoryCheck},

		{Name: "address", Wire: "address", Type: Text, Value: opt(p.Address)},
		{Name: "city", Wire: "city", Type: Text, Value: opt(p.City)},
		{Name: "region", Wire: "region", Type: Text, Value: opt(p.Region)},
		{Name: "postal_code", Wire: "postal_code", Type: Text, Value: opt(p.PostalCode)},
		{Name: "country_code", Wire: "country", Type: Text, Value: opt(p.CountryCode)},
		{Name: "within_distance", Wire: "within", Type: Integer, Value: opt(p.WithinDistance)},
		{Name: "within_unit", Wire: "within_unit", Type: Text, Value: opt(p.WithinUnit), Check: withinUnitCheck},

		{Name: "latitude", Wire: "latitude", Type: Float, Value: opt(p.Latitude)},
		{Name: "longitude", Wire: "longitude", Type: Float, Value: opt(p.Longitude)},

		{Name: "date_start", Wire: "date", Type: Text, Value: opt(p.DateStart)},
		{Name: "date_created", Wire: "date_created", Type: Text, Value: opt(p.DateCreated)},
		{Name: "date_modified", Wire: "date_modified", Type: Text, Value: opt(p.DateModified)},

		{Name: "organizer_name", Wire: "organizer", Type: Text, Value: opt(p.OrganizerName)},
		{Name: "max_events", Wire: "max", Type: Integer, Value: opt(p.MaxEvents)},

		{Name: "count_only", Wire: "count_only", Type: Boolean, Value: orFalse(p.CountOnly), Transform: BoolTrueFalse},
		{Name: "sort_by", Wire: "sort_by", Type: Text, Value: opt(p.SortBy), Check: searchSortCheck},
		{Name: "page", Wire: "page", Type: Integer, Value: opt(p.Page)},
		{Name: "since_id", Wire: "since_id", Type: Integer, Value: opt(p.SinceID)},
		{Name: "tracking_link", Wire: "tracking_link", Type: Text, Value: opt(p.TrackingLink)},
	})
}

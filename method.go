package eventbrite

import (
	"sort"

	"github.com/broady/eventbrite/internal/meta"
)

// Method names a remote operation; it is the last path segment of the request.
type Method string

const (
	MethodDiscountNew         Method = "discount_new"
	MethodDiscountUpdate      Method = "discount_update"
	MethodEventCopy           Method = "event_copy"
	MethodEventGet            Method = "event_get"
	MethodEventListAttendees  Method = "event_list_attendees"
	MethodEventListDiscounts  Method = "event_list_discounts"
	MethodEventNew            Method = "event_new"
	MethodEventSearch         Method = "event_search"
	MethodEventUpdate         Method = "event_update"
	MethodOrganizerListEvents Method = "organizer_list_events"
	MethodOrganizerNew        Method = "organizer_new"
	MethodOrganizerUpdate     Method = "organizer_update"
	MethodPaymentUpdate       Method = "payment_update"
	MethodTicketNew           Method = "ticket_new"
	MethodTicketUpdate        Method = "ticket_update"
	MethodUserGet             Method = "user_get"
	MethodUserListEvents      Method = "user_list_events"
	MethodUserListOrganizers  Method = "user_list_organizers"
	MethodUserListTickets     Method = "user_list_tickets"
	MethodUserListVenues      Method = "user_list_venues"
	MethodUserNew             Method = "user_new"
	MethodUserUpdate          Method = "user_update"
	MethodVenueNew            Method = "venue_new"
	MethodVenueUpdate         Method = "venue_update"
)

// MethodInfo describes a catalog entry.
type MethodInfo = meta.MethodMetadata

var catalog = func() map[Method]*MethodInfo {
	entries := []struct {
		m           Method
		group       string
		unsupported string
	}{
		{MethodDiscountNew, "discounts", ""},
		{MethodDiscountUpdate, "discounts", ""},
		{MethodEventCopy, "events", ""},
		{MethodEventGet, "events", ""},
		{MethodEventListAttendees, "events", ""},
		{MethodEventListDiscounts, "events", ""},
		{MethodEventNew, "events", ""},
		{MethodEventSearch, "events", ""},
		{MethodEventUpdate, "events", ""},
		{MethodOrganizerListEvents, "organizers", ""},
		{MethodOrganizerNew, "organizers", ""},
		{MethodOrganizerUpdate, "organizers", ""},
		{MethodPaymentUpdate, "payments", ""},
		{MethodTicketNew, "tickets", ""},
		{MethodTicketUpdate, "tickets", ""},
		{MethodUserGet, "users", ""},
		{MethodUserListEvents, "users", ""},
		{MethodUserListOrganizers, "users", ""},
		{MethodUserListTickets, "users", ""},
		{MethodUserListVenues, "users", ""},
		{MethodUserNew, "users", ""},
		{MethodUserUpdate, "users", "upstream documentation does not say which user is updated"},
		{MethodVenueNew, "venues", ""},
		{MethodVenueUpdate, "venues", ""},
	}
	c := make(map[Method]*MethodInfo, len(entries))
	for _, e := range entries {
		c[e.m] = &MethodInfo{
			Name:          string(e.m),
			Group:         e.group,
			Authenticated: true,
			Unsupported:   e.unsupported,
		}
	}
	return c
}()

// Info returns the catalog entry for m, or nil if m is not a known operation.
func (m Method) Info() *MethodInfo {
	info, ok := catalog[m]
	if !ok {
		return nil
	}
	cp := *info
	return &cp
}

// Supported reports whether m is a known operation the client will call.
func (m Method) Supported() bool {
	info, ok := catalog[m]
	return ok && info.Supported()
}

// Authenticated reports whether calls to m carry the client credentials.
func (m Method) Authenticated() bool {
	info, ok := catalog[m]
	return ok && info.Authenticated
}

// Catalog returns every known operation sorted by name, including unsupported ones.
func Catalog() []MethodInfo {
	out := make([]MethodInfo, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

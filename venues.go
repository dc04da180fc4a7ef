package eventbrite

import "context"

type NewVenueParams struct {
	OrganizerID *int
	Name        *string
	Address     *string
	Address2    *string
	City        *string
	Region      *string
	PostalCode  *string
	CountryCode *string
}

type UpdateVenueParams struct {
	VenueID     *int
	Name        *string
	Address     *string
	Address2    *string
	City        *string
	Region      *string
	PostalCode  *string
	CountryCode *string
}

// NewVenue creates a venue owned by an organizer.
func (c *Client) NewVenue(ctx context.Context, p *NewVenueParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodVenueNew, []Field{
		{Name: "organizer_id", Wire: "organizer_id", Type: Integer, Value: opt(p.OrganizerID), Required: true},
		{Name: "venue_name", Wire: "venue", Type: Text, Value: opt(p.Name), Required: true},
		{Name: "address", Wire: "address", Type: Text, Value: opt(p.Address)},
		{Name: "address2", Wire: "address_2", Type: Text, Value: opt(p.Address2)},
		{Name: "city", Wire: "city", Type: Text, Value: opt(p.City)},
		{Name: "region", Wire: "region", Type: Text, Value: opt(p.Region), Required: true},
		{Name: "postal_code", Wire: "postal_code", Type: Text, Value: opt(p.PostalCode)},
		{Name: "country_code", Wire: "country_code", Type: Text, Value: opt(p.CountryCode), Required: true},
	})
}

// UpdateVenue changes a venue.
func (c *Client) UpdateVenue(ctx context.Context, p *UpdateVenueParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodVenueUpdate, []Field{
		{Name: "venue_id", Wire: "id", Type: Integer, Value: opt(p.VenueID), Required: true},
		{Name: "venue_name", Wire: "venue", Type: Text, Value: opt(p.Name), Required: true},
		{Name: "address", Wire: "address", Type: Text, Value: opt(p.Address)},
		{Name: "address2", Wire: "address_2", Type: Text, Value: opt(p.Address2)},
		{Name: "city", Wire: "city", Type: Text, Value: opt(p.City)},
		{Name: "region", Wire: "region", Type: Text, Value: opt(p.Region)},
		{Name: "postal_code", Wire: "postal_code", Type: Text, Value: opt(p.PostalCode)},
		{Name: "country_code", Wire: "country_code", Type: Text, Value: opt(p.CountryCode)},
	})
}

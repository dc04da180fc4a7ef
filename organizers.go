package eventbrite

import "context"

type ListOrganizerEventsParams struct {
	OrganizerID *int
}

type NewOrganizerParams struct {
	Name        *string
	Description *string
}

type UpdateOrganizerParams struct {
	OrganizerID *int
	Name        *string
	Description *string
}

// ListOrganizerEvents lists the events of an organizer profile.
func (c *Client) ListOrganizerEvents(ctx context.Context, p *ListOrganizerEventsParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodOrganizerListEvents, []Field{
		{Name: "organizer_id", Wire: "id", Type: Integer, Value: opt(p.OrganizerID), Required: true},
	})
}

// NewOrganizer creates an organizer profile.
func (c *Client) NewOrganizer(ctx context.Context, p *NewOrganizerParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodOrganizerNew, []Field{
		{Name: "name", Wire: "name", Type: Text, Value: opt(p.Name), Required: true},
		{Name: "description", Wire: "description", Type: Text, Value: opt(p.Description)},
	})
}

// UpdateOrganizer changes an organizer profile.
func (c *Client) UpdateOrganizer(ctx context.Context, p *UpdateOrganizerParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodOrganizerUpdate, []Field{
		{Name: "organizer_id", Wire: "organizer_id", Type: Integer, Value: opt(p.OrganizerID), Required: true},
		{Name: "name", Wire: "name", Type: Text, Value: opt(p.Name)},
		{Name: "description", Wire: "description", Type: Text, Value: opt(p.Description)},
	})
}

package eventbrite

import "context"

// GetUserParams identify a user by exactly one of UserID and Email.
type GetUserParams struct {
	UserID *int
	Email  *string
}

// ListUserEventsParams are the parameters of user_list_events.
// Results are sorted ascending unless Descending is set.
type ListUserEventsParams struct {
	Email *string

	ExcludeDescription bool
	ExcludeVenue       bool
	ExcludeLogo        bool
	ExcludeStyle       bool
	ExcludeOrganizer   bool

	StatusLive    bool
	StatusStarted bool
	StatusEnded   bool

	Descending bool
}

// UserLoginParams carry a user's login. The API takes the password as a
// query parameter, so it travels in the request URL.
type UserLoginParams struct {
	Email    *string
	Password *string
}

var userIdentity = ExactlyOneOf("user identity", "user_id", "email")

// GetUser fetches a user by id or email.
func (c *Client) GetUser(ctx context.Context, p *GetUserParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodUserGet, []Field{
		{Name: "user_id", Wire: "user_id", Type: Integer, Value: opt(p.UserID)},
		{Name: "user_email", Wire: "email", Type: Text, Value: opt(p.Email)},
	}, userIdentity)
}

// ListUserEvents lists the events of a user.
func (c *Client) ListUserEvents(ctx context.Context, p *ListUserEventsParams) (any, error) {
	p = orEmpty(p)
	var exclude []string
	for _, e := range []struct {
		on   bool
		name string
	}{
		{p.ExcludeDescription, "description"},
		{p.ExcludeVenue, "venue"},
		{p.ExcludeLogo, "logo"},
		{p.ExcludeStyle, "style"},
		{p.ExcludeOrganizer, "organizer"},
	} {
		if e.on {
			exclude = append(exclude, e.name)
		}
	}

	var statuses []string
	if p.StatusLive {
		statuses = append(statuses, "live")
	}
	if p.StatusStarted {
		statuses = append(statuses, "started")
	}
	if p.StatusEnded {
		statuses = append(statuses, "ended")
	}

	order := "asc"
	if p.Descending {
		order = "desc"
	}

	return c.call(ctx, MethodUserListEvents, []Field{
		{Name: "user_email", Wire: "user", Type: Text, Value: opt(p.Email)},
		{Name: "do_not_display", Wire: "do_not_display", Type: TextSequence, Value: seq(exclude), Transform: CommaJoined},
		{Name: "event_statuses", Wire: "status_list", Type: TextSequence, Value: seq(statuses), Transform: CommaJoined},
		{Name: "asc_or_desc", Wire: "asc_or_desc", Type: Text, Value: order},
	})
}

// ListUserOrganizers lists the organizer profiles of a user.
func (c *Client) ListUserOrganizers(ctx context.Context, p *UserLoginParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodUserListOrganizers, loginFields("user", "password", p))
}

// ListUserTickets lists the tickets of the authenticated user.
func (c *Client) ListUserTickets(ctx context.Context) (any, error) {
	return c.call(ctx, MethodUserListTickets, nil)
}

// ListUserVenues lists the venues of a user.
func (c *Client) ListUserVenues(ctx context.Context, p *UserLoginParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodUserListVenues, loginFields("user", "password", p))
}

// NewUser registers a user.
func (c *Client) NewUser(ctx context.Context, p *UserLoginParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodUserNew, loginFields("email", "passwd", p))
}

// UpdateUser is not supported and always fails with CodeNotImplemented.
func (c *Client) UpdateUser(ctx context.Context) (any, error) {
	return c.Execute(ctx, MethodUserUpdate, nil, true)
}

func loginFields(emailWire, passwordWire string, p *UserLoginParams) []Field {
	return []Field{
		{Name: "user_email", Wire: emailWire, Type: Text, Value: opt(p.Email), Required: true},
		{Name: "password", Wire: passwordWire, Type: Text, Value: opt(p.Password), Required: true},
	}
}

package eventbrite

// Response is the raw result of one round trip.
// The client does not interpret StatusCode; the API reports failures in the body.
type Response struct {
	StatusCode int
	Body       []byte
}

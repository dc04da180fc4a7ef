package eventbrite

import "context"

// UpdatePaymentParams are the parameters of payment_update.
//
// Each Accept flag needs its companion fields: PayPal an email, Google
// Checkout a merchant id and key, check/cash/invoice their instructions.
type UpdatePaymentParams struct {
	EventID *int

	AcceptPayPal *bool
	PayPalEmail  *string

	AcceptGoogle      *bool
	GoogleMerchantID  *string
	GoogleMerchantKey *string

	AcceptCheck       *bool
	CheckInstructions *string

	AcceptCash       *bool
	CashInstructions *string

	AcceptInvoice       *bool
	InvoiceInstructions *string
}

var paymentRules = []Rule{
	DependsOn("accept_paypal", "paypal_email"),
	DependsOn("accept_google", "google_merchant_id", "google_merchant_key"),
	DependsOn("accept_check", "instructions_check"),
	DependsOn("accept_cash", "instructions_cash"),
	DependsOn("accept_invoice", "instructions_invoice"),
}

// UpdatePayment sets the payment options of an event.
func (c *Client) UpdatePayment(ctx context.Context, p *UpdatePaymentParams) (any, error) {
	p = orEmpty(p)
	return c.call(ctx, MethodPaymentUpdate, []Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Value: opt(p.EventID), Required: true},

		{Name: "accept_paypal", Wire: "accept_paypal", Type: Boolean, Value: opt(p.AcceptPayPal), Transform: BoolOneZero},
		{Name: "paypal_email", Wire: "paypal_email", Type: Text, Value: opt(p.PayPalEmail)},

		{Name: "accept_google", Wire: "accept_google", Type: Boolean, Value: opt(p.AcceptGoogle), Transform: BoolOneZero},
		{Name: "google_merchant_id", Wire: "google_merchant_id", Type: Text, Value: opt(p.GoogleMerchantID)},
		{Name: "google_merchant_key", Wire: "google_merchant_key", Type: Text, Value: opt(p.GoogleMerchantKey)},

		{Name: "accept_check", Wire: "accept_check", Type: Boolean, Value: opt(p.AcceptCheck), Transform: BoolOneZero},
		{Name: "instructions_check", Wire: "instructions_check", Type: Text, Value: opt(p.CheckInstructions)},

		{Name: "accept_cash", Wire: "accept_cash", Type: Boolean, Value: opt(p.AcceptCash), Transform: BoolOneZero},
		{Name: "instructions_cash", Wire: "instructions_cash", Type: Text, Value: opt(p.CashInstructions)},

		{Name: "accept_invoice", Wire: "accept_invoice", Type: Boolean, Value: opt(p.AcceptInvoice), Transform: BoolOneZero},
		{Name: "instructions_invoice", Wire: "instructions_invoice", Type: Text, Value: opt(p.InvoiceInstructions)},
	}, paymentRules...)
}

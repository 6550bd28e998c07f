package request

type RecordPaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=razorpay stripe paypal upi cash card"`
}

// GatewayWebhookRequest is the gateway callback payload. Deliveries are
// at-least-once; TransactionID deduplicates replays.
type GatewayWebhookRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,max=100"`
	Status        string `json:"status" validate:"required,oneof=processing completed failed refunded"`
}

package kafka

import "time"

// Topic names for storefront domain events.
const (
	TopicOrderPlaced            = "storefront.order.placed"
	TopicBargainOfferSubmitted  = "storefront.bargain.offer_submitted"
	TopicCustomRequestSubmitted = "storefront.custom.request_submitted"
)

// OrderPlacedItem is a single line of an order carried in the event payload.
type OrderPlacedItem struct {
	SareeID  string `json:"sareeId"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// OrderPlacedEvent is published after an order has been persisted and paid.
// Consumers use it to decrement catalog stock.
type OrderPlacedEvent struct {
	EventID     string            `json:"eventId"`
	OrderID     string            `json:"orderId"`
	UserID      uint              `json:"userId"`
	Items       []OrderPlacedItem `json:"items"`
	TotalAmount int64             `json:"totalAmount"`
	PlacedAt    time.Time         `json:"placedAt"`
}

// BargainOfferSubmittedEvent is published when a customer submits a bargain
// offer on a saree.
type BargainOfferSubmittedEvent struct {
	EventID     string    `json:"eventId"`
	OfferID     string    `json:"offerId"`
	SareeID     string    `json:"sareeId"`
	UserID      uint      `json:"userId"`
	Amount      int64     `json:"amount"`
	ListPrice   int64     `json:"listPrice"`
	DiscountPct float64   `json:"discountPct"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// CustomRequestSubmittedEvent is published when a customer submits a custom
// saree design request.
type CustomRequestSubmittedEvent struct {
	EventID     string    `json:"eventId"`
	RequestID   string    `json:"requestId"`
	UserID      uint      `json:"userId"`
	Border      string    `json:"border"`
	Pallu       string    `json:"pallu"`
	Color       string    `json:"color"`
	SubmittedAt time.Time `json:"submittedAt"`
}

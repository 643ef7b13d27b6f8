package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationStatusCreated    DonationStatus = "CREATED"
	DonationStatusSuccess    DonationStatus = "SUCCESS"
	DonationStatusFailure    DonationStatus = "FAILURE"
	DonationStatusSubscribed DonationStatus = "SUBSCRIBED"
)

func (s DonationStatus) String() string {
	return string(s)
}

// DonationStatusFromGateway maps a gateway callback status to a donation
// status transition. Intermediate statuses (processing, wait_accept and the
// like) do not move the donation and return false.
func DonationStatusFromGateway(status string) (DonationStatus, bool) {
	switch status {
	case "success":
		return DonationStatusSuccess, true
	case "failure", "error", "reversed":
		return DonationStatusFailure, true
	case "subscribed":
		return DonationStatusSubscribed, true
	default:
		return "", false
	}
}

// Donation is an audit record of a checkout produced by this service. The
// signed payload is stored verbatim so a form or a gateway call can be
// reproduced later without re-signing.
type Donation struct {
	ID          uuid.UUID
	Amount      int
	Currency    Currency
	Action      Action
	Description string
	Language    Language
	Data        string
	Signature   string
	Status      DonationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DonationFilter struct {
	Action    *string
	Currency  *string
	CreatedAt *string
	Page      uint64
	Limit     uint64
	SortBy    DonationSortCol
	OrderBy   OrderByCol
}

type DonationSortCol string

func (d DonationSortCol) String() string {
	return string(d)
}

const (
	SortByAmount    DonationSortCol = "amount"
	SortByCreatedAt DonationSortCol = "created_at"
)

func (d DonationSortCol) IsValid() bool {
	switch d {
	case SortByAmount, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}

// Callback is the payload the gateway POSTs to the server callback endpoint
// after a payment attempt. Amounts arrive as JSON numbers with a fractional
// part even for whole-unit payments.
type Callback struct {
	PaymentID   int64           `json:"payment_id"`
	Status      string          `json:"status"`
	Action      string          `json:"action"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	OrderID     string          `json:"order_id"`
}

// PaymentEvent is a stored, signature-verified gateway callback.
type PaymentEvent struct {
	ID        uuid.UUID
	PaymentID int64
	OrderID   string
	Status    string
	Action    string
	Amount    decimal.Decimal
	Currency  string
	CreatedAt time.Time
}

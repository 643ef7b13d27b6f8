package entity

import (
	"fmt"
)

type Currency string

const (
	CurrencyUAH Currency = "UAH"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Validate() error {
	switch c {
	case CurrencyUAH, CurrencyUSD, CurrencyEUR:
		return nil
	default:
		return fmt.Errorf("%w: unknown currency %q", ErrConstraintViolation, c)
	}
}

type Action string

const (
	ActionPay       Action = "pay"
	ActionHold      Action = "hold"
	ActionSubscribe Action = "subscribe"
	ActionPayDonate Action = "paydonate"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) Validate() error {
	switch a {
	case ActionPay, ActionHold, ActionSubscribe, ActionPayDonate:
		return nil
	default:
		return fmt.Errorf("%w: unknown action %q", ErrConstraintViolation, a)
	}
}

type SubscribePeriodicity string

const (
	PeriodicityDay   SubscribePeriodicity = "day"
	PeriodicityMonth SubscribePeriodicity = "month"
	PeriodicityYear  SubscribePeriodicity = "year"
)

func (p SubscribePeriodicity) String() string {
	return string(p)
}

func (p SubscribePeriodicity) Validate() error {
	switch p {
	case PeriodicityDay, PeriodicityMonth, PeriodicityYear:
		return nil
	default:
		return fmt.Errorf("%w: unknown subscribe periodicity %q", ErrConstraintViolation, p)
	}
}

type Language string

const (
	LanguageUK Language = "uk"
	LanguageEN Language = "en"
)

func (l Language) String() string {
	return string(l)
}

func (l Language) Validate() error {
	switch l {
	case LanguageUK, LanguageEN:
		return nil
	default:
		return fmt.Errorf("%w: unknown language %q", ErrConstraintViolation, l)
	}
}

const (
	MinAmount     = 1
	MaxAmount     = 10000
	DefaultAmount = 20

	MinVersion     = 1
	MaxVersion     = 3
	DefaultVersion = 3

	DescriptionMaxLen = 200

	DefaultDescription        = "Підтримка проєкту"
	DefaultSubscribeDateStart = "2024-01-01 00:00:00"

	// ResultPath is appended to the configured site URL to build the
	// default result_url the gateway redirects the payer back to.
	ResultPath = "/donate/thankyou"
)

// PaymentRequest is a fully validated set of checkout parameters. The JSON
// field names are fixed by the gateway protocol: the marshalled form of this
// struct is the canonical representation that gets base64-encoded and signed,
// and the gateway verifies the signature over exactly these names.
type PaymentRequest struct {
	Amount               int                  `json:"amount"`
	Currency             Currency             `json:"currency"`
	Action               Action               `json:"action"`
	SubscribePeriodicity SubscribePeriodicity `json:"subscribe_periodicity"`
	PublicKey            string               `json:"public_key"`
	Version              int                  `json:"version"`
	Description          string               `json:"description"`
	Language             Language             `json:"language"`
	SubscribeDateStart   string               `json:"subscribe_date_start"`
	ResultURL            string               `json:"result_url"`
}

// SignedPayload is the (data, signature) pair the gateway expects, together
// with the request it was derived from.
type SignedPayload struct {
	Params    PaymentRequest `json:"params"`
	Data      string         `json:"data"`
	Signature string         `json:"signature"`
}

// CheckoutInput is the raw, partial caller input before validation. Amount and
// Version are `any` because callers may send them either as JSON numbers or as
// numeric strings.
type CheckoutInput struct {
	Amount               any    `json:"amount,omitempty"`
	Currency             string `json:"currency,omitempty"`
	Action               string `json:"action,omitempty"`
	SubscribePeriodicity string `json:"subscribe_periodicity,omitempty"`
	PublicKey            string `json:"public_key,omitempty"`
	Version              any    `json:"version,omitempty"`
	Description          string `json:"description,omitempty"`
	Language             string `json:"language,omitempty"`
	SubscribeDateStart   string `json:"subscribe_date_start,omitempty"`
	ResultURL            string `json:"result_url,omitempty"`
}

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/DeNice-r/liqpay-go/internal/entity"
)

// buildRequest turns raw partial input into a fully populated PaymentRequest.
// Omitted fields take their defaults before any range or membership check, so
// an empty input always validates. Field errors are collected and joined, each
// prefixed with the offending field name.
func buildRequest(in entity.CheckoutInput, publicKey, siteURL string) (entity.PaymentRequest, error) {
	req := entity.PaymentRequest{
		Amount:               entity.DefaultAmount,
		Currency:             entity.CurrencyUAH,
		Action:               entity.ActionPay,
		SubscribePeriodicity: entity.PeriodicityMonth,
		PublicKey:            publicKey,
		Version:              entity.DefaultVersion,
		Description:          entity.DefaultDescription,
		Language:             entity.LanguageUK,
		SubscribeDateStart:   entity.DefaultSubscribeDateStart,
		ResultURL:            siteURL + entity.ResultPath,
	}

	var errs []error

	amount, err := coerceInt("amount", in.Amount, entity.DefaultAmount)
	switch {
	case err != nil:
		errs = append(errs, err)
	case amount < entity.MinAmount || amount > entity.MaxAmount:
		errs = append(errs, fmt.Errorf("amount: %w: must be between %d and %d, got %d",
			entity.ErrConstraintViolation, entity.MinAmount, entity.MaxAmount, amount))
	default:
		req.Amount = amount
	}

	version, err := coerceInt("version", in.Version, entity.DefaultVersion)
	switch {
	case err != nil:
		errs = append(errs, err)
	case version < entity.MinVersion || version > entity.MaxVersion:
		errs = append(errs, fmt.Errorf("version: %w: must be between %d and %d, got %d",
			entity.ErrConstraintViolation, entity.MinVersion, entity.MaxVersion, version))
	default:
		req.Version = version
	}

	if in.Currency != "" {
		currency := entity.Currency(in.Currency)
		if err := currency.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("currency: %w", err))
		} else {
			req.Currency = currency
		}
	}

	if in.Action != "" {
		action := entity.Action(in.Action)
		if err := action.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("action: %w", err))
		} else {
			req.Action = action
		}
	}

	if in.SubscribePeriodicity != "" {
		periodicity := entity.SubscribePeriodicity(in.SubscribePeriodicity)
		if err := periodicity.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("subscribe_periodicity: %w", err))
		} else {
			req.SubscribePeriodicity = periodicity
		}
	}

	if in.Language != "" {
		language := entity.Language(in.Language)
		if err := language.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("language: %w", err))
		} else {
			req.Language = language
		}
	}

	if in.PublicKey != "" && in.PublicKey != publicKey {
		errs = append(errs, fmt.Errorf("public_key: %w", entity.ErrCredentialMismatch))
	}

	if in.Description != "" {
		descLen := utf8.RuneCountInString(in.Description)
		if descLen > entity.DescriptionMaxLen {
			errs = append(errs, fmt.Errorf("description: %w: length %d exceeds %d characters",
				entity.ErrConstraintViolation, descLen, entity.DescriptionMaxLen))
		} else {
			req.Description = in.Description
		}
	}

	if in.SubscribeDateStart != "" {
		req.SubscribeDateStart = in.SubscribeDateStart
	}

	if in.ResultURL != "" {
		req.ResultURL = in.ResultURL
	}

	if len(errs) > 0 {
		return entity.PaymentRequest{}, errors.Join(errs...)
	}

	return req, nil
}

// coerceInt normalizes a raw value into an integer. JSON decoding hands
// numbers over as float64, callers may also send numeric strings; anything
// that is not a whole number fails coercion.
func coerceInt(field string, v any, def int) (int, error) {
	switch x := v.(type) {
	case nil:
		return def, nil
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return intFromDecimal(field, decimal.NewFromFloat(x))
	case json.Number:
		return intFromString(field, x.String())
	case string:
		return intFromString(field, x)
	default:
		return 0, fmt.Errorf("%s: %w: unsupported type %T", field, entity.ErrTypeCoercion, v)
	}
}

func intFromString(field, s string) (int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q is not a number", field, entity.ErrTypeCoercion, s)
	}

	return intFromDecimal(field, d)
}

func intFromDecimal(field string, d decimal.Decimal) (int, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%s: %w: %s is not an integer", field, entity.ErrTypeCoercion, d)
	}

	return int(d.IntPart()), nil
}

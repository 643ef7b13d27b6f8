package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/DeNice-r/liqpay-go/internal/entity"
	"github.com/DeNice-r/liqpay-go/internal/mocks"
	"github.com/DeNice-r/liqpay-go/internal/service"
	"github.com/DeNice-r/liqpay-go/pkg/config"
	"github.com/DeNice-r/liqpay-go/pkg/signature"
)

const (
	testPublicKey  = "sandbox_public_key"
	testPrivateKey = "sandbox_private_key"
	testSiteURL    = "https://example.org"
)

func newService(t *testing.T) *service.Service {
	t.Helper()

	cfg := config.LiqPay{
		PublicKey:  testPublicKey,
		PrivateKey: testPrivateKey,
	}

	return service.New(cfg, testSiteURL, nil, nil, nil)
}

func TestService_Sign_Defaults(t *testing.T) {
	t.Parallel()

	s := newService(t)

	payload, err := s.Sign(entity.CheckoutInput{})
	require.NoError(t, err)

	want := entity.PaymentRequest{
		Amount:               20,
		Currency:             entity.CurrencyUAH,
		Action:               entity.ActionPay,
		SubscribePeriodicity: entity.PeriodicityMonth,
		PublicKey:            testPublicKey,
		Version:              3,
		Description:          entity.DefaultDescription,
		Language:             entity.LanguageUK,
		SubscribeDateStart:   "2024-01-01 00:00:00",
		ResultURL:            "https://example.org/donate/thankyou",
	}
	require.Equal(t, want, payload.Params)

	// Reference pair computed with the gateway's scheme for the default
	// request and the sandbox keys above.
	const (
		wantData = "eyJhbW91bnQiOjIwLCJjdXJyZW5jeSI6IlVBSCIsImFjdGlvbiI6InBheSIsInN1YnNjcmliZV9wZXJpb2RpY2l0eSI6Im1vbnRoIiwicHVibGljX2tleSI6InNhbmRib3hfcHVibGljX2tleSIsInZlcnNpb24iOjMsImRlc2NyaXB0aW9uIjoi0J/RltC00YLRgNC40LzQutCwINC/0YDQvtGU0LrRgtGDIiwibGFuZ3VhZ2UiOiJ1ayIsInN1YnNjcmliZV9kYXRlX3N0YXJ0IjoiMjAyNC0wMS0wMSAwMDowMDowMCIsInJlc3VsdF91cmwiOiJodHRwczovL2V4YW1wbGUub3JnL2RvbmF0ZS90aGFua3lvdSJ9"
		wantSig  = "YDEMynf08HZ5xK0ruXqgcX4Ym6U="
	)

	require.Equal(t, wantData, payload.Data)
	require.Equal(t, wantSig, payload.Signature)
}

func TestService_Sign_Deterministic(t *testing.T) {
	t.Parallel()

	s := newService(t)

	in := entity.CheckoutInput{Amount: 100, Currency: "USD", Action: "subscribe", SubscribePeriodicity: "month"}

	first, err := s.Sign(in)
	require.NoError(t, err)
	require.NotEmpty(t, first.Data)
	require.NotEmpty(t, first.Signature)

	second, err := s.Sign(in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestService_Sign_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newService(t)

	payload, err := s.Sign(entity.CheckoutInput{Amount: 100, Currency: "USD", Action: "subscribe", SubscribePeriodicity: "month"})
	require.NoError(t, err)

	var got entity.PaymentRequest

	err = signature.Decode(payload.Data, &got)
	require.NoError(t, err)
	require.Equal(t, payload.Params, got)
	require.Equal(t, 100, got.Amount)
	require.Equal(t, entity.CurrencyUSD, got.Currency)
}

func TestService_Sign_AmountCoercion(t *testing.T) {
	t.Parallel()

	s := newService(t)

	for _, tt := range []struct {
		name       string
		amount     any
		wantAmount int
		wantErr    error
	}{
		{
			name:       "omitted",
			amount:     nil,
			wantAmount: 20,
		},
		{
			name:       "integer",
			amount:     100,
			wantAmount: 100,
		},
		{
			name:       "json number",
			amount:     float64(500),
			wantAmount: 500,
		},
		{
			name:       "numeric string",
			amount:     "9999",
			wantAmount: 9999,
		},
		{
			name:       "lower bound",
			amount:     1,
			wantAmount: 1,
		},
		{
			name:       "upper bound",
			amount:     10000,
			wantAmount: 10000,
		},
		{
			name:    "zero",
			amount:  0,
			wantErr: entity.ErrConstraintViolation,
		},
		{
			name:    "negative",
			amount:  -5,
			wantErr: entity.ErrConstraintViolation,
		},
		{
			name:    "above range",
			amount:  10001,
			wantErr: entity.ErrConstraintViolation,
		},
		{
			name:    "non-numeric string",
			amount:  "abc",
			wantErr: entity.ErrTypeCoercion,
		},
		{
			name:    "fractional number",
			amount:  20.5,
			wantErr: entity.ErrTypeCoercion,
		},
		{
			name:    "unsupported type",
			amount:  []string{"20"},
			wantErr: entity.ErrTypeCoercion,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := s.Sign(entity.CheckoutInput{Amount: tt.amount})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorContains(t, err, "amount")

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantAmount, payload.Params.Amount)
		})
	}
}

func TestService_Sign_Enums(t *testing.T) {
	t.Parallel()

	s := newService(t)

	for _, tt := range []struct {
		name    string
		in      entity.CheckoutInput
		wantErr bool
	}{
		{name: "currency UAH", in: entity.CheckoutInput{Currency: "UAH"}},
		{name: "currency USD", in: entity.CheckoutInput{Currency: "USD"}},
		{name: "currency EUR", in: entity.CheckoutInput{Currency: "EUR"}},
		{name: "currency GBP", in: entity.CheckoutInput{Currency: "GBP"}, wantErr: true},
		{name: "currency lowercase", in: entity.CheckoutInput{Currency: "uah"}, wantErr: true},
		{name: "action pay", in: entity.CheckoutInput{Action: "pay"}},
		{name: "action hold", in: entity.CheckoutInput{Action: "hold"}},
		{name: "action subscribe", in: entity.CheckoutInput{Action: "subscribe"}},
		{name: "action paydonate", in: entity.CheckoutInput{Action: "paydonate"}},
		{name: "action refund", in: entity.CheckoutInput{Action: "refund"}, wantErr: true},
		{name: "periodicity day", in: entity.CheckoutInput{SubscribePeriodicity: "day"}},
		{name: "periodicity month", in: entity.CheckoutInput{SubscribePeriodicity: "month"}},
		{name: "periodicity year", in: entity.CheckoutInput{SubscribePeriodicity: "year"}},
		{name: "periodicity week", in: entity.CheckoutInput{SubscribePeriodicity: "week"}, wantErr: true},
		{name: "language uk", in: entity.CheckoutInput{Language: "uk"}},
		{name: "language en", in: entity.CheckoutInput{Language: "en"}},
		{name: "language de", in: entity.CheckoutInput{Language: "de"}, wantErr: true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := s.Sign(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrConstraintViolation)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Sign_Version(t *testing.T) {
	t.Parallel()

	s := newService(t)

	payload, err := s.Sign(entity.CheckoutInput{Version: "2"})
	require.NoError(t, err)
	require.Equal(t, 2, payload.Params.Version)

	_, err = s.Sign(entity.CheckoutInput{Version: 4})
	require.ErrorIs(t, err, entity.ErrConstraintViolation)
	require.ErrorContains(t, err, "version")
}

func TestService_Sign_PublicKeyMismatch(t *testing.T) {
	t.Parallel()

	s := newService(t)

	_, err := s.Sign(entity.CheckoutInput{PublicKey: "wrong-key"})
	require.ErrorIs(t, err, entity.ErrCredentialMismatch)
}

func TestService_Sign_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	s := newService(t)

	long := make([]rune, entity.DescriptionMaxLen+1)
	for i := range long {
		long[i] = 'п'
	}

	_, err := s.Sign(entity.CheckoutInput{Description: string(long)})
	require.ErrorIs(t, err, entity.ErrConstraintViolation)
	require.ErrorContains(t, err, "description")
}

func TestService_Sign_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	s := newService(t)

	_, err := s.Sign(entity.CheckoutInput{Amount: "abc", Currency: "GBP"})
	require.ErrorIs(t, err, entity.ErrTypeCoercion)
	require.ErrorIs(t, err, entity.ErrConstraintViolation)
	require.ErrorContains(t, err, "amount")
	require.ErrorContains(t, err, "currency")
}

func TestService_Sign_MissingPrivateKey(t *testing.T) {
	t.Parallel()

	cfg := config.LiqPay{
		PublicKey:  testPublicKey,
		PrivateKey: "",
	}
	s := service.New(cfg, testSiteURL, nil, nil, nil)

	_, err := s.Sign(entity.CheckoutInput{})
	require.ErrorIs(t, err, entity.ErrMissingCredential)
}

func TestService_CreateCheckout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	gateway := mocks.NewMockGateway(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	const redirectURL = "https://www.liqpay.ua/checkout/some-token"

	gateway.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Return(redirectURL, nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendDonationCreated(gomock.Any(), gomock.Any())

	cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
	s := service.New(cfg, testSiteURL, repo, gateway, producer)

	url, donation, err := s.CreateCheckout(context.Background(),
		entity.CheckoutInput{Amount: 100, Currency: "USD", Action: "paydonate"})
	require.NoError(t, err)
	require.Equal(t, redirectURL, url)
	require.Equal(t, 100, donation.Amount)
	require.Equal(t, entity.CurrencyUSD, donation.Currency)
	require.Equal(t, entity.ActionPayDonate, donation.Action)
	require.Equal(t, entity.DonationStatusCreated, donation.Status)
	require.NotEmpty(t, donation.Data)
	require.NotEmpty(t, donation.Signature)
}

func TestService_CreateCheckout_InvalidInputSkipsGateway(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	gateway := mocks.NewMockGateway(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
	s := service.New(cfg, testSiteURL, repo, gateway, producer)

	// No gateway, repository or producer expectations: nothing may be
	// called for invalid input.
	_, _, err := s.CreateCheckout(context.Background(), entity.CheckoutInput{Currency: "GBP"})
	require.ErrorIs(t, err, entity.ErrConstraintViolation)
}

func TestService_HandleCallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	// The order id was not issued by this service, so no donation row may
	// be touched: the callback is recorded as an audit event only.
	data, err := signature.Encode(entity.Callback{
		PaymentID: 165142,
		Status:    "success",
		Action:    "pay",
		Currency:  "UAH",
		OrderID:   "order-1",
	})
	require.NoError(t, err)

	repo.EXPECT().CreatePaymentEvent(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendPaymentStatus(gomock.Any(), gomock.Any())

	cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
	s := service.New(cfg, testSiteURL, repo, nil, producer)

	err = s.HandleCallback(context.Background(), data, signature.Sign(testPrivateKey, data))
	require.NoError(t, err)
}

func TestService_HandleCallback_MovesDonationStatus(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		status     string
		wantStatus entity.DonationStatus
	}{
		{status: "success", wantStatus: entity.DonationStatusSuccess},
		{status: "failure", wantStatus: entity.DonationStatusFailure},
		{status: "error", wantStatus: entity.DonationStatusFailure},
		{status: "reversed", wantStatus: entity.DonationStatusFailure},
		{status: "subscribed", wantStatus: entity.DonationStatusSubscribed},
	} {
		tt := tt
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			producer := mocks.NewMockProducer(ctrl)

			donationID := uuid.Must(uuid.NewV4())

			data, err := signature.Encode(entity.Callback{
				PaymentID: 165142,
				Status:    tt.status,
				Action:    "pay",
				Currency:  "UAH",
				OrderID:   donationID.String(),
			})
			require.NoError(t, err)

			repo.EXPECT().CreatePaymentEvent(gomock.Any(), gomock.Any()).Return(nil)
			repo.EXPECT().UpdateDonationStatus(gomock.Any(), donationID, tt.wantStatus, gomock.Any()).Return(nil)
			producer.EXPECT().SendPaymentStatus(gomock.Any(), gomock.Any())

			cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
			s := service.New(cfg, testSiteURL, repo, nil, producer)

			err = s.HandleCallback(context.Background(), data, signature.Sign(testPrivateKey, data))
			require.NoError(t, err)
		})
	}
}

func TestService_HandleCallback_IntermediateStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	data, err := signature.Encode(entity.Callback{
		PaymentID: 165142,
		Status:    "processing",
		Action:    "pay",
		Currency:  "UAH",
		OrderID:   uuid.Must(uuid.NewV4()).String(),
	})
	require.NoError(t, err)

	// The event is stored, but an intermediate status must not move the
	// donation: no UpdateDonationStatus expectation.
	repo.EXPECT().CreatePaymentEvent(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendPaymentStatus(gomock.Any(), gomock.Any())

	cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
	s := service.New(cfg, testSiteURL, repo, nil, producer)

	err = s.HandleCallback(context.Background(), data, signature.Sign(testPrivateKey, data))
	require.NoError(t, err)
}

func TestService_HandleCallback_UnknownDonation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	donationID := uuid.Must(uuid.NewV4())

	data, err := signature.Encode(entity.Callback{
		PaymentID: 165142,
		Status:    "success",
		Action:    "pay",
		Currency:  "UAH",
		OrderID:   donationID.String(),
	})
	require.NoError(t, err)

	repo.EXPECT().CreatePaymentEvent(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), donationID, entity.DonationStatusSuccess, gomock.Any()).
		Return(entity.ErrNotFound)
	producer.EXPECT().SendPaymentStatus(gomock.Any(), gomock.Any())

	cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
	s := service.New(cfg, testSiteURL, repo, nil, producer)

	// A well-formed id this service never issued is not an error.
	err = s.HandleCallback(context.Background(), data, signature.Sign(testPrivateKey, data))
	require.NoError(t, err)
}

func TestService_HandleCallback_InvalidSignature(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	cfg := config.LiqPay{PublicKey: testPublicKey, PrivateKey: testPrivateKey}
	s := service.New(cfg, testSiteURL, repo, nil, producer)

	data, err := signature.Encode(entity.Callback{PaymentID: 1, Status: "success"})
	require.NoError(t, err)

	err = s.HandleCallback(context.Background(), data, "forged")
	require.ErrorIs(t, err, entity.ErrInvalidSignature)
}

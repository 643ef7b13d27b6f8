package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/DeNice-r/liqpay-go/internal/entity"
	"github.com/DeNice-r/liqpay-go/internal/repository"
	"github.com/DeNice-r/liqpay-go/pkg/postgres"
)

func TestRepository_CreateDonation(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond).UTC()

	d := entity.Donation{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      100,
		Currency:    entity.CurrencyUSD,
		Action:      entity.ActionPay,
		Description: uuid.Must(uuid.NewV4()).String(),
		Language:    entity.LanguageUK,
		Data:        "ZGF0YQ==",
		Signature:   "c2ln",
		Status:      entity.DonationStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.CreateDonation(context.Background(), d)
	require.NoError(t, err)

	got, err := repo.Donation(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestRepository_Donation_NotFound(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	_, err := repo.Donation(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_Donations_Filter(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond).UTC()

	// Shared marker so parallel tests do not see each other's rows.
	marker := uuid.Must(uuid.NewV4()).String()

	donations := []entity.Donation{
		{
			ID:          uuid.Must(uuid.NewV4()),
			Amount:      50,
			Currency:    entity.CurrencyUAH,
			Action:      entity.ActionPay,
			Description: marker,
			Language:    entity.LanguageUK,
			Status:      entity.DonationStatusCreated,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Amount:      200,
			Currency:    entity.CurrencyEUR,
			Action:      entity.ActionSubscribe,
			Description: marker,
			Language:    entity.LanguageEN,
			Status:      entity.DonationStatusCreated,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, d := range donations {
		require.NoError(t, repo.CreateDonation(context.Background(), d))
	}

	currency := entity.CurrencyEUR.String()
	filter := entity.DonationFilter{
		Currency: &currency,
		Page:     1,
		Limit:    10,
		SortBy:   entity.SortByCreatedAt,
		OrderBy:  entity.DESC,
	}

	got, totalCount, err := repo.Donations(context.Background(), filter)
	require.NoError(t, err)
	require.NotZero(t, totalCount)

	for _, d := range got {
		require.Equal(t, entity.CurrencyEUR, d.Currency)
	}
}

func TestRepository_UpdateDonationStatus(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond).UTC()

	d := entity.Donation{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      20,
		Currency:    entity.CurrencyUAH,
		Action:      entity.ActionPay,
		Description: uuid.Must(uuid.NewV4()).String(),
		Language:    entity.LanguageUK,
		Status:      entity.DonationStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	require.NoError(t, repo.CreateDonation(context.Background(), d))

	settledAt := now.Add(time.Minute)

	err := repo.UpdateDonationStatus(context.Background(), d.ID, entity.DonationStatusSuccess, settledAt)
	require.NoError(t, err)

	got, err := repo.Donation(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DonationStatusSuccess, got.Status)
	require.Equal(t, settledAt, got.UpdatedAt)
	require.Equal(t, now, got.CreatedAt)
}

func TestRepository_UpdateDonationStatus_NotFound(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	err := repo.UpdateDonationStatus(context.Background(),
		uuid.Must(uuid.NewV4()), entity.DonationStatusFailure, time.Now().UTC())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_CreatePaymentEvent(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond).UTC()

	e := entity.PaymentEvent{
		ID:        uuid.Must(uuid.NewV4()),
		PaymentID: 165142,
		OrderID:   uuid.Must(uuid.NewV4()).String(),
		Status:    "success",
		Action:    "pay",
		Amount:    decimal.New(10050, -2),
		Currency:  "UAH",
		CreatedAt: now,
	}

	err := repo.CreatePaymentEvent(context.Background(), e)
	require.NoError(t, err)

	events, err := repo.PaymentEvents(context.Background(), 100)
	require.NoError(t, err)

	var got entity.PaymentEvent

	for _, ev := range events {
		if ev.ID == e.ID {
			got = ev
			break
		}
	}

	require.Equal(t, e.ID, got.ID)
	require.Equal(t, e.PaymentID, got.PaymentID)
	require.Equal(t, e.OrderID, got.OrderID)
	require.Equal(t, e.Status, got.Status)
	require.True(t, e.Amount.Equal(got.Amount))
}

func TestRepository_CreatePaymentEvent_EmptyOrderID(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	e := entity.PaymentEvent{
		ID:        uuid.Must(uuid.NewV4()),
		PaymentID: 1,
		Status:    "failure",
		Action:    "pay",
		Amount:    decimal.NewFromInt(20),
		Currency:  "UAH",
		CreatedAt: time.Now().UTC(),
	}

	// Empty order_id is stored as NULL and must scan back as "".
	err := repo.CreatePaymentEvent(context.Background(), e)
	require.NoError(t, err)

	events, err := repo.PaymentEvents(context.Background(), 100)
	require.NoError(t, err)

	for _, ev := range events {
		if ev.ID == e.ID {
			require.Empty(t, ev.OrderID)
			return
		}
	}

	t.Fatalf("event %s not found", e.ID)
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.UpMigrations(pool))

	return repository.New(pool)
}

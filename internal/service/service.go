package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/DeNice-r/liqpay-go/internal/entity"
	"github.com/DeNice-r/liqpay-go/pkg/config"
	"github.com/DeNice-r/liqpay-go/pkg/signature"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateDonation(ctx context.Context, d entity.Donation) error
	Donation(ctx context.Context, id uuid.UUID) (entity.Donation, error)
	Donations(ctx context.Context, filter entity.DonationFilter) ([]entity.Donation, int, error)
	UpdateDonationStatus(ctx context.Context, id uuid.UUID, status entity.DonationStatus, updatedAt time.Time) error
	CreatePaymentEvent(ctx context.Context, e entity.PaymentEvent) error
	PaymentEvents(ctx context.Context, limit uint64) ([]entity.PaymentEvent, error)
}

type Gateway interface {
	Checkout(ctx context.Context, data, signature string) (string, error)
}

type Producer interface {
	SendDonationCreated(ctx context.Context, d entity.Donation)
	SendPaymentStatus(ctx context.Context, e entity.PaymentEvent)
}

type Service struct {
	publicKey  string
	privateKey string
	siteURL    string
	repo       Repository
	gateway    Gateway
	producer   Producer
}

func New(cfg config.LiqPay, siteURL string, repo Repository, gateway Gateway, producer Producer) *Service {
	return &Service{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		siteURL:    siteURL,
		repo:       repo,
		gateway:    gateway,
		producer:   producer,
	}
}

// Sign validates raw checkout input and derives the (data, signature) pair for
// it. The result is pure: the same input and keys always produce the same
// payload.
func (s *Service) Sign(in entity.CheckoutInput) (entity.SignedPayload, error) {
	req, err := buildRequest(in, s.publicKey, s.siteURL)
	if err != nil {
		return entity.SignedPayload{}, fmt.Errorf("validate request: %w", err)
	}

	if s.privateKey == "" {
		return entity.SignedPayload{}, fmt.Errorf("private key is not configured: %w", entity.ErrMissingCredential)
	}

	data, err := signature.Encode(req)
	if err != nil {
		return entity.SignedPayload{}, fmt.Errorf("encode request: %w", err)
	}

	return entity.SignedPayload{
		Params:    req,
		Data:      data,
		Signature: signature.Sign(s.privateKey, data),
	}, nil
}

// CreateCheckout signs the request, submits it to the gateway and records the
// donation. Returns the URL the payer should be redirected to.
func (s *Service) CreateCheckout(ctx context.Context, in entity.CheckoutInput) (string, entity.Donation, error) {
	payload, err := s.Sign(in)
	if err != nil {
		return "", entity.Donation{}, err
	}

	redirectURL, err := s.gateway.Checkout(ctx, payload.Data, payload.Signature)
	if err != nil {
		return "", entity.Donation{}, fmt.Errorf("gateway checkout: %w", err)
	}

	now := time.Now()

	d := entity.Donation{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      payload.Params.Amount,
		Currency:    payload.Params.Currency,
		Action:      payload.Params.Action,
		Description: payload.Params.Description,
		Language:    payload.Params.Language,
		Data:        payload.Data,
		Signature:   payload.Signature,
		Status:      entity.DonationStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateDonation(ctx, d)
	if err != nil {
		return "", entity.Donation{}, fmt.Errorf("create donation: %w", err)
	}

	s.producer.SendDonationCreated(ctx, d)

	slog.InfoContext(ctx, fmt.Sprintf("Створено платіж %s на суму %d %s", d.ID, d.Amount, d.Currency))

	return redirectURL, d, nil
}

// HandleCallback verifies and records a server callback from the gateway.
// The signature is checked with the same scheme the requests are signed with;
// a mismatch means the payload was not produced by the gateway.
func (s *Service) HandleCallback(ctx context.Context, data, sig string) error {
	if s.privateKey == "" {
		return fmt.Errorf("private key is not configured: %w", entity.ErrMissingCredential)
	}

	if !signature.Verify(s.privateKey, data, sig) {
		return fmt.Errorf("callback payload: %w", entity.ErrInvalidSignature)
	}

	var cb entity.Callback

	err := signature.Decode(data, &cb)
	if err != nil {
		return fmt.Errorf("decode callback: %w", err)
	}

	event := entity.PaymentEvent{
		ID:        uuid.Must(uuid.NewV4()),
		PaymentID: cb.PaymentID,
		OrderID:   cb.OrderID,
		Status:    cb.Status,
		Action:    cb.Action,
		Amount:    cb.Amount,
		Currency:  cb.Currency,
		CreatedAt: time.Now(),
	}

	err = s.repo.CreatePaymentEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("create payment event: %w", err)
	}

	err = s.applyStatus(ctx, cb)
	if err != nil {
		return fmt.Errorf("apply status: %w", err)
	}

	s.producer.SendPaymentStatus(ctx, event)

	slog.InfoContext(ctx, fmt.Sprintf("Отримано статус платежу %d: %q", cb.PaymentID, cb.Status))

	return nil
}

// applyStatus moves the donation the callback settles to its final status.
// The gateway echoes order_id back verbatim; when it carries a donation id
// and the status is final, the donation row is updated. Callbacks with no
// usable order_id, intermediate statuses, or ids this service never issued
// stay audit-only.
func (s *Service) applyStatus(ctx context.Context, cb entity.Callback) error {
	id, err := uuid.FromString(cb.OrderID)
	if err != nil {
		return nil
	}

	status, ok := entity.DonationStatusFromGateway(cb.Status)
	if !ok {
		return nil
	}

	err = s.repo.UpdateDonationStatus(ctx, id, status, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("update donation %s: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Платіж %s переведено у статус %s", id, status))

	return nil
}

func (s *Service) Donations(ctx context.Context, filter entity.DonationFilter) ([]entity.Donation, int, error) {
	donations, count, err := s.repo.Donations(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("get donations: %w", err)
	}

	return donations, count, nil
}

func (s *Service) Donation(ctx context.Context, id uuid.UUID) (entity.Donation, error) {
	d, err := s.repo.Donation(ctx, id)
	if err != nil {
		return entity.Donation{}, fmt.Errorf("get donation %s: %w", id, err)
	}

	return d, nil
}

func (s *Service) PaymentEvents(ctx context.Context, limit uint64) ([]entity.PaymentEvent, error) {
	events, err := s.repo.PaymentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get payment events: %w", err)
	}

	return events, nil
}

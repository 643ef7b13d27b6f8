package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/DeNice-r/liqpay-go/internal/clients/liqpay"
	"github.com/DeNice-r/liqpay-go/internal/entity"
	"github.com/DeNice-r/liqpay-go/internal/form"
	"github.com/DeNice-r/liqpay-go/pkg/config"
)

// @title LiqPay Donation API
// @version 1.0
// @description API for validating, signing and submitting LiqPay payment requests
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Sign(in entity.CheckoutInput) (entity.SignedPayload, error)
	CreateCheckout(ctx context.Context, in entity.CheckoutInput) (string, entity.Donation, error)
	HandleCallback(ctx context.Context, data, signature string) error
	Donations(ctx context.Context, filter entity.DonationFilter) ([]entity.Donation, int, error)
	Donation(ctx context.Context, id uuid.UUID) (entity.Donation, error)
	PaymentEvents(ctx context.Context, limit uint64) ([]entity.PaymentEvent, error)
}

type Handler struct {
	s      Service
	liqpay config.LiqPay
}

func NewHandler(s Service, liqpayCfg config.LiqPay) *Handler {
	return &Handler{
		s:      s,
		liqpay: liqpayCfg,
	}
}

type DonateResponse struct {
	DonationID string `json:"donationId"`
	URL        string `json:"url"`
}

// Donate validates and signs a payment request, submits it to the gateway and
// returns the redirect URL.
// @Summary Створення платежу
// @Description Валідує параметри платежу, підписує їх та створює платіж у шлюзі. Повертає URL для переадресації платника
// @Tags donate
// @Accept json
// @Produce json
// @Param CheckoutInput body entity.CheckoutInput false "Параметри платежу (усі поля необов'язкові)"
// @Success 201 {object} DonateResponse
// @Failure 400 {object} ErrorResponse "Невалідне тіло запиту"
// @Failure 403 {object} ErrorResponse "Невірний публічний ключ"
// @Failure 422 {object} ErrorResponse "Невалідні параметри платежу"
// @Failure 502 {object} ErrorResponse "Платіжний шлюз недоступний"
// @Router /donate [post]
func (h *Handler) Donate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CheckoutInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний JSON")
		return
	}

	redirectURL, donation, err := h.s.CreateCheckout(ctx, in)
	if err != nil {
		h.sendCheckoutErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, DonateResponse{
		DonationID: donation.ID.String(),
		URL:        redirectURL,
	})
}

// SignPayload validates and signs a payment request without contacting the
// gateway.
// @Summary Підпис платежу
// @Description Валідує параметри платежу та повертає підписаний payload для самостійного вбудовування форми
// @Tags donate
// @Accept json
// @Produce json
// @Param CheckoutInput body entity.CheckoutInput false "Параметри платежу"
// @Success 200 {object} entity.SignedPayload
// @Failure 400 {object} ErrorResponse "Невалідне тіло запиту"
// @Failure 403 {object} ErrorResponse "Невірний публічний ключ"
// @Failure 422 {object} ErrorResponse "Невалідні параметри платежу"
// @Router /donate/sign [post]
func (h *Handler) SignPayload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CheckoutInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний JSON")
		return
	}

	payload, err := h.s.Sign(in)
	if err != nil {
		h.sendCheckoutErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, payload)
}

// DonateForm validates and signs a payment request and renders the embeddable
// HTML payment form.
// @Summary Форма платежу
// @Description Валідує параметри платежу та повертає HTML-форму з прихованими полями data і signature
// @Tags donate
// @Accept json
// @Produce html
// @Param CheckoutInput body entity.CheckoutInput false "Параметри платежу"
// @Success 200 {string} string "HTML форма"
// @Failure 400 {object} ErrorResponse "Невалідне тіло запиту"
// @Failure 422 {object} ErrorResponse "Невалідні параметри платежу"
// @Router /donate/form [post]
func (h *Handler) DonateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.CheckoutInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний JSON")
		return
	}

	payload, err := h.s.Sign(in)
	if err != nil {
		h.sendCheckoutErr(ctx, w, err)
		return
	}

	var buf bytes.Buffer

	err = form.Render(&buf, h.liqpay.APIURL+liqpay.CheckoutPath, h.liqpay.CheckoutJSURL, payload)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не вдалося сформувати форму")
		return
	}

	SendHTML(ctx, w, http.StatusOK, buf.Bytes())
}

type CallbackResponse struct{}

// LiqPayCallback processes a server-to-server payment status callback.
// @Summary Callback платіжного шлюзу
// @Description Перевіряє підпис callback-платежу та зберігає подію зі статусом
// @Tags callbacks
// @Accept x-www-form-urlencoded
// @Produce json
// @Param data formData string true "Base64 payload"
// @Param signature formData string true "Підпис payload"
// @Success 200 {object} CallbackResponse
// @Failure 400 {object} ErrorResponse "Невалідне тіло запиту"
// @Failure 403 {object} ErrorResponse "Невірний підпис"
// @Router /callbacks/liqpay [post]
func (h *Handler) LiqPayCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseForm()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідне тіло запиту")
		return
	}

	data := r.PostFormValue("data")
	signature := r.PostFormValue("signature")

	if data == "" || signature == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "Відсутні поля data або signature")
		return
	}

	err = h.s.HandleCallback(ctx, data, signature)

	switch {
	case err == nil:
		SendJSON(ctx, w, http.StatusOK, CallbackResponse{})
	case errors.Is(err, entity.ErrInvalidSignature):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Невірний підпис")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не вдалося обробити callback")
	}
}

type DonationsResponse struct {
	Donations  []DonationEntity `json:"donations"`
	TotalCount int              `json:"totalCount"`
}

type DonationEntity struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	Currency    string    `json:"currency"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Donations lists created donations with filtering, sorting and pagination.
// @Summary Список платежів
// @Description Повертає список створених платежів з фільтрацією, сортуванням та пагінацією
// @Tags donations
// @Produce json
// @Param action query string false "Фільтр за типом операції"
// @Param currency query string false "Фільтр за валютою"
// @Param createdAt query string false "Фільтр за датою створення (формат: YYYY-MM-DD)"
// @Param limit query int false "Кількість записів на сторінці (за замовчуванням 10)"
// @Param page query int false "Номер сторінки (за замовчуванням 1)"
// @Param sortBy query string false "Поле сортування (amount, created_at)"
// @Param orderBy query string false "Порядок сортування (asc, desc)"
// @Success 200 {object} DonationsResponse
// @Failure 500 {object} ErrorResponse "Не вдалося отримати список платежів"
// @Router /donations [get]
// @Security BearerAuth
func (h *Handler) Donations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseDonationFilter(r.URL.Query())

	donations, totalCount, err := h.s.Donations(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не вдалося отримати список платежів")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DonationsResponse{
		Donations:  donationsToAPI(donations),
		TotalCount: totalCount,
	})
}

// DonationByID returns a single donation.
// @Summary Платіж за ідентифікатором
// @Description Повертає платіж за його ідентифікатором
// @Tags donations
// @Produce json
// @Param id path string true "Ідентифікатор платежу"
// @Success 200 {object} DonationEntity
// @Failure 400 {object} ErrorResponse "Невалідний ідентифікатор"
// @Failure 404 {object} ErrorResponse "Платіж не знайдено"
// @Router /donations/{id} [get]
// @Security BearerAuth
func (h *Handler) DonationByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний ідентифікатор платежу")
		return
	}

	d, err := h.s.Donation(ctx, id)

	switch {
	case err == nil:
		SendJSON(ctx, w, http.StatusOK, donationsToAPI([]entity.Donation{d})[0])
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Платіж не знайдено")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не вдалося отримати платіж")
	}
}

type PaymentEventsResponse struct {
	Events []PaymentEventEntity `json:"events"`
}

type PaymentEventEntity struct {
	ID        string    `json:"id"`
	PaymentID int64     `json:"paymentId"`
	OrderID   string    `json:"orderId,omitempty"`
	Status    string    `json:"status"`
	Action    string    `json:"action"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentEvents lists the most recent verified gateway callbacks.
// @Summary Події платіжного шлюзу
// @Description Повертає останні перевірені callback-події шлюзу
// @Tags donations
// @Produce json
// @Param limit query int false "Кількість подій (за замовчуванням 50)"
// @Success 200 {object} PaymentEventsResponse
// @Failure 500 {object} ErrorResponse "Не вдалося отримати події"
// @Router /donations/events [get]
// @Security BearerAuth
func (h *Handler) PaymentEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	const (
		defaultLimit uint64 = 50
		maxLimit     uint64 = 500
	)

	limit, err := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit == 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	events, err := h.s.PaymentEvents(ctx, limit)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не вдалося отримати події")
		return
	}

	res := make([]PaymentEventEntity, 0, len(events))
	for _, e := range events {
		res = append(res, PaymentEventEntity{
			ID:        e.ID.String(),
			PaymentID: e.PaymentID,
			OrderID:   e.OrderID,
			Status:    e.Status,
			Action:    e.Action,
			Amount:    e.Amount.String(),
			Currency:  e.Currency,
			CreatedAt: e.CreatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, PaymentEventsResponse{Events: res})
}

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) sendCheckoutErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrCredentialMismatch):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Невірний публічний ключ")
	case errors.Is(err, entity.ErrTypeCoercion), errors.Is(err, entity.ErrConstraintViolation):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Невалідні параметри платежу")
	case errors.Is(err, entity.ErrMissingCredential):
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Сервіс не налаштовано")
	case errors.Is(err, entity.ErrGatewayUnavailable):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Платіжний шлюз недоступний")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не вдалося створити платіж")
	}
}

func parseDonationFilter(url url.Values) entity.DonationFilter {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	action := url.Get("action")
	currency := url.Get("currency")
	createdAt := url.Get("createdAt")
	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.DonationSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	// Zero would underflow the offset computation, so it falls back to the
	// default along with unparsable values.
	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil || limit == 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.DonationFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if action != "" {
		filter.Action = &action
	}

	if currency != "" {
		filter.Currency = &currency
	}

	if createdAt != "" {
		filter.CreatedAt = &createdAt
	}

	return filter
}

func donationsToAPI(donations []entity.Donation) []DonationEntity {
	res := make([]DonationEntity, 0, len(donations))
	for _, d := range donations {
		res = append(res, DonationEntity{
			ID:          d.ID.String(),
			Amount:      d.Amount,
			Currency:    d.Currency.String(),
			Action:      d.Action.String(),
			Description: d.Description,
			Language:    d.Language.String(),
			Status:      d.Status.String(),
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		})
	}

	return res
}

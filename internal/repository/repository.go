package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DeNice-r/liqpay-go/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateDonation(ctx context.Context, d entity.Donation) error {
	const q = `
	INSERT INTO donations (
		id,
		amount,
		currency,
		action,
		description,
		language,
		data,
		signature,
		status,
		created_at,
		updated_at
	)
	VALUES ( $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		d.ID,
		d.Amount,
		d.Currency,
		d.Action,
		d.Description,
		d.Language,
		d.Data,
		d.Signature,
		d.Status,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}

	return nil
}

func (r *Repository) Donation(ctx context.Context, id uuid.UUID) (entity.Donation, error) {
	q := selectDonation + " WHERE id = $1"
	return scanDonation(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Donations(
	ctx context.Context,
	f entity.DonationFilter,
) ([]entity.Donation, int, error) {
	stmt := sq.Select(
		"id",
		"amount",
		"currency",
		"action",
		"description",
		"language",
		"data",
		"signature",
		"status",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("donations").PlaceholderFormat(sq.Dollar)

	stmt = applyDonationFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	donations := make([]entity.Donation, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var d entity.Donation

		var count int

		err = rows.Scan(
			&d.ID,
			&d.Amount,
			&d.Currency,
			&d.Action,
			&d.Description,
			&d.Language,
			&d.Data,
			&d.Signature,
			&d.Status,
			&d.CreatedAt,
			&d.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		donations = append(donations, d)
	}

	return donations, totalCount, nil
}

func applyDonationFilter(stmt sq.SelectBuilder, f entity.DonationFilter) sq.SelectBuilder {
	if f.Action != nil {
		stmt = stmt.Where(sq.Eq{"action": *f.Action})
	}

	if f.Currency != nil {
		stmt = stmt.Where(sq.Eq{"currency": *f.Currency})
	}

	if f.CreatedAt != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.CreatedAt})
	}

	return stmt
}

func scanDonation(row pgx.Row) (d entity.Donation, err error) {
	err = row.Scan(
		&d.ID,
		&d.Amount,
		&d.Currency,
		&d.Action,
		&d.Description,
		&d.Language,
		&d.Data,
		&d.Signature,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Donation{}, entity.ErrNotFound
		}

		return entity.Donation{}, err
	}

	return d, nil
}

func (r *Repository) UpdateDonationStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.DonationStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE donations SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update donation status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CreatePaymentEvent(ctx context.Context, e entity.PaymentEvent) error {
	const q = `
	INSERT INTO payment_events (
		id,
		payment_id,
		order_id,
		status,
		action,
		amount,
		currency,
		created_at
	)
	VALUES ( $1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		e.ID,
		e.PaymentID,
		zeronull.Text(e.OrderID),
		e.Status,
		e.Action,
		e.Amount,
		e.Currency,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment event: %w", err)
	}

	return nil
}

func (r *Repository) PaymentEvents(ctx context.Context, limit uint64) (events []entity.PaymentEvent, err error) {
	const q = `SELECT
		id,
		payment_id,
		order_id,
		status,
		action,
		amount,
		currency,
		created_at
	FROM payment_events
	ORDER BY created_at DESC
	LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var e entity.PaymentEvent

		err = rows.Scan(
			&e.ID,
			&e.PaymentID,
			(*zeronull.Text)(&e.OrderID),
			&e.Status,
			&e.Action,
			&e.Amount,
			&e.Currency,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, e)
	}

	return events, nil
}

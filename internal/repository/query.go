package repository

const (
	selectDonation = `SELECT
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
	FROM donations`
)

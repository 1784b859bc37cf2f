package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"sparklean/internal/adapter/persistence/recordid"
	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase/interfaces"
)

const maxCreateAttempts = 5

var errCreateExhausted = errors.New("could not generate a unique record id")

// EstimateRequestSQLiteRepository implements the store contract on one
// estimate_requests table. Ordering comes from the created_at index with the
// id as a deterministic tiebreak (ULIDs sort by creation time themselves).

type EstimateRequestSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimateRequestRepository = (*EstimateRequestSQLiteRepository)(nil)

func NewEstimateRequestSQLiteRepository(db *sql.DB) *EstimateRequestSQLiteRepository {
	return &EstimateRequestSQLiteRepository{db: db}
}

func (r *EstimateRequestSQLiteRepository) Create(ctx context.Context, e entities.EstimateRequest) (entities.EstimateRequest, error) {
	addons, err := json.Marshal(addonStrings(e.AddonAreas))
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	var quote []byte
	if e.Quote != nil {
		quote, err = json.Marshal(e.Quote)
		if err != nil {
			return entities.EstimateRequest{}, err
		}
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		id, err := recordid.New()
		if err != nil {
			return entities.EstimateRequest{}, err
		}
		e.ID = id
		e.CreatedAt = time.Now().UTC()
		e.IsNew = true

		_, err = r.db.ExecContext(ctx, `
			INSERT INTO estimate_requests (
			  id, created_at, is_new, full_name, phone, email, address,
			  rooms, bathrooms, service_type, service_type_label,
			  addon_areas, other_area_text, preferred_date, preferred_time, notes, quote
			) VALUES (?, ?, 1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.CreatedAt.Format(time.RFC3339Nano),
			e.FullName, e.Phone, e.Email, e.Address,
			e.Rooms, e.Bathrooms, string(e.ServiceType), e.ServiceTypeLabel,
			string(addons), e.OtherAreaText, e.PreferredDate, e.PreferredTime, e.Notes,
			nullableBytes(quote),
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				log.Printf("[store][sqlite] record id collision on %s, retrying", id)
				continue
			}
			return entities.EstimateRequest{}, err
		}
		return e, nil
	}
	return entities.EstimateRequest{}, errCreateExhausted
}

func (r *EstimateRequestSQLiteRepository) List(ctx context.Context) ([]entities.EstimateRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, is_new, full_name, phone, email, address,
		       rooms, bathrooms, service_type, service_type_label,
		       addon_areas, other_area_text, preferred_date, preferred_time, notes, quote
		FROM estimate_requests
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.EstimateRequest{}
	for rows.Next() {
		e, err := scanEstimateRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MarkAsRead relies on SQLite counting every row matched by the UPDATE, so an
// already-read record still reports found (the write is a no-op value-wise).
func (r *EstimateRequestSQLiteRepository) MarkAsRead(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE estimate_requests SET is_new = 0 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *EstimateRequestSQLiteRepository) MarkAllAsRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE estimate_requests SET is_new = 0 WHERE is_new = 1`)
	return err
}

func (r *EstimateRequestSQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM estimate_requests WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *EstimateRequestSQLiteRepository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM estimate_requests WHERE is_new = 1`).Scan(&count)
	return count, err
}

func scanEstimateRequest(rows *sql.Rows) (entities.EstimateRequest, error) {
	var (
		e         entities.EstimateRequest
		createdAt string
		isNew     int
		svcType   string
		addons    string
		quote     sql.NullString
	)
	err := rows.Scan(
		&e.ID, &createdAt, &isNew, &e.FullName, &e.Phone, &e.Email, &e.Address,
		&e.Rooms, &e.Bathrooms, &svcType, &e.ServiceTypeLabel,
		&addons, &e.OtherAreaText, &e.PreferredDate, &e.PreferredTime, &e.Notes, &quote,
	)
	if err != nil {
		return entities.EstimateRequest{}, err
	}

	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	e.IsNew = isNew != 0
	e.ServiceType = entities.ServiceType(svcType)

	var addonNames []string
	if err := json.Unmarshal([]byte(addons), &addonNames); err != nil {
		return entities.EstimateRequest{}, err
	}
	for _, a := range addonNames {
		e.AddonAreas = append(e.AddonAreas, entities.AddonArea(a))
	}

	if quote.Valid && quote.String != "" {
		var q entities.QuoteBreakdown
		if err := json.Unmarshal([]byte(quote.String), &q); err != nil {
			return entities.EstimateRequest{}, err
		}
		e.Quote = &q
	}
	return e, nil
}

func addonStrings(areas []entities.AddonArea) []string {
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		out = append(out, string(a))
	}
	return out
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

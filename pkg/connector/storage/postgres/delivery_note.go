package postgres

import (
	"context"
	"errors"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

func (s *_Storage) StoreDeliveryNote(ctx context.Context, tx storage.Tx, note model.DeliveryNote) error {
	query := `
WITH new_data AS (
	INSERT INTO delivery_note (name, "version", docstatus, tracking_number, shipping_status, updated_at, delivery_note)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (name) DO UPDATE SET
		"version" = excluded."version",
		docstatus = excluded.docstatus,
		tracking_number = excluded.tracking_number,
		shipping_status = excluded.shipping_status,
		updated_at = excluded.updated_at,
		delivery_note = excluded.delivery_note
	RETURNING name, "version", delivery_note, updated_at
)
INSERT INTO delivery_note_history (name, "version", delivery_note, created_at)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		note.Name,
		note.Version,
		int(note.DocStatus),
		note.TrackingNumber,
		string(note.ShippingStatus),
		note.UpdatedAt,
		note,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetDeliveryNote(ctx context.Context, tx storage.Tx, name string) (model.DeliveryNote, error) {
	query := `SELECT delivery_note FROM delivery_note WHERE name = $1`

	var note model.DeliveryNote
	if err := tx.QueryRow(ctx, query, name).Scan(&note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DeliveryNote{}, model.ErrDeliveryNoteNotFound
		}
		return model.DeliveryNote{}, err
	}

	return note, nil
}

func (s *_Storage) ListDeliveryNotes(ctx context.Context, tx storage.Tx, req storage.ListDeliveryNotesRequest) (storage.ListDeliveryNotesResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			delivery_note
		FROM delivery_note
		WHERE
			(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR name = ANY($3)) AND
			(COALESCE(array_length($4::INT[], 1), 0) = 0 OR docstatus = ANY($4)) AND
			(NOT $5::BOOLEAN OR (tracking_number <> '' AND shipping_status <> '')) AND
			(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR NOT (shipping_status = ANY($6)))
	)
	SELECT
		total,
		delivery_note
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT delivery_note FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	docStatuses := lo.Map(req.DocStatuses, func(s model.DocStatus, _ int) int { return int(s) })
	excludeStatuses := lo.Map(req.ExcludeStatuses, func(s model.ShippingStatus, _ int) string { return string(s) })

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Names, docStatuses, req.Tracked, excludeStatuses)
	if err != nil {
		return storage.ListDeliveryNotesResult{}, err
	}
	defer rows.Close()

	var res storage.ListDeliveryNotesResult
	for rows.Next() {
		var total *int
		var note *model.DeliveryNote

		if err := rows.Scan(&total, &note); err != nil {
			return storage.ListDeliveryNotesResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if note != nil {
			res.Records = append(res.Records, *note)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListDeliveryNotesResult{}, err
	}

	return res, nil
}

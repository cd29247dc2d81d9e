package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, owner_id, tracking_number, type, status,
		sender, recipient, packages, pickup, delivery, insurance, cost, payment, timeline,
		is_draft, last_saved_step, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentEntity *entities.Shipment) (*entities.Shipment, error) {
	shipmentModel := FromDomain(shipmentEntity)

	query := `
		INSERT INTO shipments (owner_id, tracking_number, type, status,
			sender, recipient, packages, pickup, delivery, insurance, cost, payment, timeline,
			is_draft, last_saved_step)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + shipmentColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		shipmentModel.OwnerID,
		shipmentModel.TrackingNumber,
		shipmentModel.Type,
		shipmentModel.Status,
		shipmentModel.Sender,
		shipmentModel.Recipient,
		shipmentModel.Packages,
		shipmentModel.Pickup,
		shipmentModel.Delivery,
		shipmentModel.Insurance,
		shipmentModel.Cost,
		shipmentModel.Payment,
		shipmentModel.Timeline,
		shipmentModel.IsDraft,
		shipmentModel.LastSavedStep,
	)

	created, err := scanShipment(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_number = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get by tracking number error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) Save(ctx context.Context, shipmentEntity *entities.Shipment) (*entities.Shipment, error) {
	shipmentModel := FromDomain(shipmentEntity)

	query := `
		UPDATE shipments
		SET owner_id = $2,
			tracking_number = $3,
			type = $4,
			status = $5,
			sender = $6,
			recipient = $7,
			packages = $8,
			pickup = $9,
			delivery = $10,
			insurance = $11,
			cost = $12,
			payment = $13,
			timeline = $14,
			is_draft = $15,
			last_saved_step = $16,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + shipmentColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		shipmentModel.ID,
		shipmentModel.OwnerID,
		shipmentModel.TrackingNumber,
		shipmentModel.Type,
		shipmentModel.Status,
		shipmentModel.Sender,
		shipmentModel.Recipient,
		shipmentModel.Packages,
		shipmentModel.Pickup,
		shipmentModel.Delivery,
		shipmentModel.Insurance,
		shipmentModel.Cost,
		shipmentModel.Payment,
		shipmentModel.Timeline,
		shipmentModel.IsDraft,
		shipmentModel.LastSavedStep,
	)

	saved, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository save error: %w", err)
	}

	return ToDomain(saved), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ShipmentFilter, page entities.Page) ([]entities.Shipment, error) {
	builder := qb.
		Select("id", "owner_id", "tracking_number", "type", "status",
			"sender", "recipient", "packages", "pickup", "delivery", "insurance", "cost", "payment", "timeline",
			"is_draft", "last_saved_step", "created_at", "updated_at").
		From("shipments")

	builder = applyFilter(builder, filter)

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(page.Offset)).
		Limit(uint64(page.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	var shipments []entities.Shipment
	for rows.Next() {
		shipmentModel, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list scan error: %w", err)
		}
		shipments = append(shipments, *ToDomain(shipmentModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list rows error: %w", err)
	}

	return shipments, nil
}

func (r *Repository) Count(ctx context.Context, filter entities.ShipmentFilter) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("shipments")

	builder = applyFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}

	return total, nil
}

func (r *Repository) DeleteDraft(ctx context.Context, id int64) error {
	query := `
		DELETE FROM shipments WHERE id = $1 AND is_draft = TRUE
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete draft error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) DeleteDraftsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM shipments WHERE is_draft = TRUE AND updated_at < $1
	`
	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository delete drafts error: %w", err)
	}

	return result.RowsAffected(), nil
}

func applyFilter(builder sq.SelectBuilder, filter entities.ShipmentFilter) sq.SelectBuilder {
	if filter.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": filter.Type.String()})
	}
	if filter.IsDraft != nil {
		builder = builder.Where(sq.Eq{"is_draft": *filter.IsDraft})
	}
	return builder
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var shipmentModel ShipmentDB
	err := row.Scan(
		&shipmentModel.ID,
		&shipmentModel.OwnerID,
		&shipmentModel.TrackingNumber,
		&shipmentModel.Type,
		&shipmentModel.Status,
		&shipmentModel.Sender,
		&shipmentModel.Recipient,
		&shipmentModel.Packages,
		&shipmentModel.Pickup,
		&shipmentModel.Delivery,
		&shipmentModel.Insurance,
		&shipmentModel.Cost,
		&shipmentModel.Payment,
		&shipmentModel.Timeline,
		&shipmentModel.IsDraft,
		&shipmentModel.LastSavedStep,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentModel, nil
}

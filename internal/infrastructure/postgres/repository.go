package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmehra2102/todoboard/internal/domain"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	queryTimeout = 5 * time.Second

	// foreign_key_violation
	pqForeignKeyViolation = "23503"
)

type PostgresRepository struct {
	db     *sql.DB
	tracer trace.Tracer
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		tracer: otel.Tracer("postgres-repository"),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

const listColumns = `id, owner_id, title, colour, order_index, created_at, updated_at`

const itemColumns = `id, list_id, title, note, priority, reminder, is_done, order_index, created_at, updated_at`

func scanList(row rowScanner) (*domain.TodoList, error) {
	list := &domain.TodoList{}
	var colour string

	err := row.Scan(
		&list.ID,
		&list.OwnerID,
		&list.Title,
		&colour,
		&list.OrderIndex,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c, err := domain.ColourFrom(colour)
	if err != nil {
		c = domain.White
	}
	list.Colour = c
	return list, nil
}

func scanItem(row rowScanner) (*domain.Item, error) {
	item := &domain.Item{}

	err := row.Scan(
		&item.ID,
		&item.ListID,
		&item.Title,
		&item.Note,
		&item.Priority,
		&item.Reminder,
		&item.Done,
		&item.OrderIndex,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) GetList(ctx context.Context, id string) (*domain.TodoList, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.GetList")
	defer span.End()

	span.SetAttributes(attribute.String("list.id", id))

	query := `SELECT ` + listColumns + ` FROM todo_lists WHERE id = $1`

	list, err := scanList(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			span.SetAttributes(attribute.Bool("not_found", true))
			return nil, domain.ErrListNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) ListsByOwner(ctx context.Context, ownerID string) ([]*domain.TodoList, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.ListsByOwner")
	defer span.End()

	span.SetAttributes(attribute.String("owner.id", ownerID))

	query := `SELECT ` + listColumns + ` FROM todo_lists WHERE owner_id = $1 ORDER BY order_index ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}
	defer rows.Close()

	lists := make([]*domain.TodoList, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan todo list: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating todo lists: %w", err)
	}

	span.SetAttributes(attribute.Int("returned_count", len(lists)))
	return lists, nil
}

func (r *PostgresRepository) UpsertList(ctx context.Context, list *domain.TodoList) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.UpsertList")
	defer span.End()

	span.SetAttributes(
		attribute.String("list.id", list.ID),
		attribute.String("owner.id", list.OwnerID),
	)

	query := `
		INSERT INTO todo_lists (` + listColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, colour = EXCLUDED.colour, order_index = EXCLUDED.order_index, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		list.ID,
		list.OwnerID,
		list.Title,
		list.Colour.Code,
		list.OrderIndex,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert list: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteList(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.DeleteList")
	defer span.End()

	span.SetAttributes(attribute.String("list.id", id))

	// Items go with the list through ON DELETE CASCADE.
	result, err := r.db.ExecContext(ctx, `DELETE FROM todo_lists WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete list: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrListNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdateListOrder(ctx context.Context, lists []*domain.TodoList) error {
	ids := make([]string, len(lists))
	indices := make([]int, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
		indices[i] = l.OrderIndex
	}
	return r.updateOrder(ctx, "repository.UpdateListOrder", `UPDATE todo_lists SET order_index = $1, updated_at = $2 WHERE id = $3`, ids, indices)
}

func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.GetItem")
	defer span.End()

	span.SetAttributes(attribute.String("item.id", id))

	query := `SELECT ` + itemColumns + ` FROM todo_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			span.SetAttributes(attribute.Bool("not_found", true))
			return nil, domain.ErrItemNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) ItemsByList(ctx context.Context, listID string) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.ItemsByList")
	defer span.End()

	span.SetAttributes(attribute.String("list.id", listID))

	query := `SELECT ` + itemColumns + ` FROM todo_items WHERE list_id = $1 ORDER BY order_index ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	span.SetAttributes(attribute.Int("returned_count", len(items)))
	return items, nil
}

func (r *PostgresRepository) UpsertItem(ctx context.Context, item *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.UpsertItem")
	defer span.End()

	span.SetAttributes(
		attribute.String("item.id", item.ID),
		attribute.String("list.id", item.ListID),
	)

	query := `
		INSERT INTO todo_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, note = EXCLUDED.note, priority = EXCLUDED.priority, reminder = EXCLUDED.reminder,
			is_done = EXCLUDED.is_done, order_index = EXCLUDED.order_index, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.ListID,
		item.Title,
		item.Note,
		item.Priority,
		item.Reminder,
		item.Done,
		item.OrderIndex,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrListNotFound
		}
		span.RecordError(err)
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.DeleteItem")
	defer span.End()

	span.SetAttributes(attribute.String("item.id", id))

	result, err := r.db.ExecContext(ctx, `DELETE FROM todo_items WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdateItemOrder(ctx context.Context, items []*domain.Item) error {
	ids := make([]string, len(items))
	indices := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
		indices[i] = it.OrderIndex
	}
	return r.updateOrder(ctx, "repository.UpdateItemOrder", `UPDATE todo_items SET order_index = $1, updated_at = $2 WHERE id = $3`, ids, indices)
}

// updateOrder writes one order index per row inside a single transaction.
// Rows that no longer exist are skipped; last write wins.
func (r *PostgresRepository) updateOrder(ctx context.Context, spanName, query string, ids []string, indices []int) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, spanName)
	defer span.End()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, id := range ids {
		if _, err := stmt.ExecContext(ctx, indices[i], now, id); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to update order of %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	span.SetAttributes(attribute.Int("batch_size", len(ids)))
	return nil
}

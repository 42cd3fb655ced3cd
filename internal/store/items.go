package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/inventoria/inventoria/internal/model"
)

// Every item query in this file filters on user_id together with any other
// condition, so an item belonging to another user behaves exactly like a
// missing one.

const itemColumns = `id, user_id, name, item_key, balance, min_stock, trend_data, image_url, created_at, updated_at`

// CreateItem inserts a new item and returns the stored row with its
// server-assigned ID and timestamps.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item) (*model.Item, error) {
	trend, err := json.Marshal(item.TrendData)
	if err != nil {
		return nil, fmt.Errorf("encoding trend data: %w", err)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (user_id, name, item_key, balance, min_stock, trend_data, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.UserID, item.Name, item.ItemKey, item.Balance, item.MinStock, string(trend), nullString(item.ImageURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id, item.UserID)
}

// GetItem returns the item with the given ID owned by the given user, or nil
// if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id, userID int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND user_id = ?`, id, userID,
	)
	return scanItem(row)
}

// GetItemByKey returns the given user's item with the given derived key, or
// nil if no such item exists. Used for the create-time uniqueness check.
func GetItemByKey(ctx context.Context, db *sql.DB, userID int64, key string) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? AND item_key = ?`, userID, key,
	)
	return scanItem(row)
}

// ListItems returns all items owned by the given user in insertion order.
func ListItems(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// SearchItems returns the given user's items whose name contains the query,
// case-insensitively. Callers treat an empty query as "list all" instead.
func SearchItems(ctx context.Context, db *sql.DB, userID int64, query string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE user_id = ? AND instr(lower(name), lower(?)) > 0
		 ORDER BY id`,
		userID, query,
	)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// UpdateItem persists an item's mutable fields, scoped to its owner.
func UpdateItem(ctx context.Context, db *sql.DB, item *model.Item) error {
	trend, err := json.Marshal(item.TrendData)
	if err != nil {
		return fmt.Errorf("encoding trend data: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET name = ?, item_key = ?, balance = ?, min_stock = ?,
		        trend_data = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		item.Name, item.ItemKey, item.Balance, item.MinStock, string(trend),
		nullString(item.ImageURL), item.ID, item.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// DeleteItem permanently removes the item with the given ID owned by the
// given user. Returns false if no such item existed.
func DeleteItem(ctx context.Context, db *sql.DB, id, userID int64) (bool, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	return n > 0, nil
}

func scanItem(row *sql.Row) (*model.Item, error) {
	item := &model.Item{}
	var trend string
	var imageURL sql.NullString
	err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.ItemKey, &item.Balance,
		&item.MinStock, &trend, &imageURL, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	if err := json.Unmarshal([]byte(trend), &item.TrendData); err != nil {
		return nil, fmt.Errorf("decoding trend data: %w", err)
	}
	item.ImageURL = imageURL.String
	return item, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		var item model.Item
		var trend string
		var imageURL sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.ItemKey, &item.Balance,
			&item.MinStock, &trend, &imageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if err := json.Unmarshal([]byte(trend), &item.TrendData); err != nil {
			return nil, fmt.Errorf("decoding trend data: %w", err)
		}
		item.ImageURL = imageURL.String
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// itemsTable hydrates and dehydrates menu_items rows. Callers hold the
// backend lock.
type itemsTable struct {
	backend *Backend
}

func (t *itemsTable) exists(id string) (bool, error) {
	var one int
	err := t.backend.db.QueryRow(
		"SELECT 1 FROM menu_items WHERE item_id = ?", id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking item existence: %w", err)
	}
	return true, nil
}

func (t *itemsTable) insert(item types.MenuItem) error {
	found, err := t.exists(item.ID)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("adding item %q: %w", item.ID, types.ErrDuplicateID)
	}

	_, err = t.backend.db.Exec(
		"INSERT INTO menu_items (item_id, name, description, course, price) VALUES (?, ?, ?, ?, ?)",
		item.ID, item.Name, item.Description, item.Course.String(), item.Price,
	)
	if err != nil {
		return fmt.Errorf("inserting item %q: %w", item.ID, err)
	}
	return nil
}

func (t *itemsTable) delete(id string) error {
	if _, err := t.backend.db.Exec("DELETE FROM menu_items WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("deleting item %q: %w", id, err)
	}
	return nil
}

func (t *itemsTable) fetch(course types.Course) ([]types.MenuItem, error) {
	query := "SELECT item_id, name, description, course, price FROM menu_items"
	var args []any
	if course.Valid() {
		query += " WHERE course = ?"
		args = append(args, course.String())
	}
	query += " ORDER BY seq"

	rows, err := t.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := make([]types.MenuItem, 0)
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func hydrateItem(rows *sql.Rows) (types.MenuItem, error) {
	var item types.MenuItem
	var course string
	if err := rows.Scan(&item.ID, &item.Name, &item.Description, &course, &item.Price); err != nil {
		return types.MenuItem{}, fmt.Errorf("scanning item: %w", err)
	}
	c, err := types.ParseCourse(course)
	if err != nil {
		return types.MenuItem{}, fmt.Errorf("hydrating item %q: %w", item.ID, err)
	}
	item.Course = c
	return item, nil
}

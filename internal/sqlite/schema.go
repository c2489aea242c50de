package sqlite

// Schema DDL for the session database. seq preserves insertion order;
// item_id carries the UUID handed out by the entry form.
const (
	createMenuItems = `CREATE TABLE menu_items (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    course TEXT NOT NULL CHECK (course IN ('Starters', 'Mains', 'Dessert')),
    price INTEGER NOT NULL CHECK (price >= 0)
);`

	createCourseIndex = `CREATE INDEX idx_menu_items_course ON menu_items(course);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createMenuItems,
	createCourseIndex,
}

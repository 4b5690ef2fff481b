package sqlite

import "github.com/filtro/filtro/filtro/storage"

const ddlBase = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS catalog_values (
	field TEXT NOT NULL,
	value TEXT NOT NULL,
	label TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (field, value)
);
`

var SQLTemplates = storage.SQL{
	GetMeta:       "SELECT value FROM meta WHERE key = ?1",
	SetMeta:       "INSERT INTO meta(key,value) VALUES(?1,?2) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
	InsertValue:   "INSERT INTO catalog_values(field, value, label) VALUES(?1,?2,?3) ON CONFLICT(field, value) DO UPDATE SET label=excluded.label",
	DeleteValue:   "DELETE FROM catalog_values WHERE field = ?1 AND value = ?2",
	HasValue:      "SELECT 1 FROM catalog_values WHERE field = ?1 AND value = ?2",
	ListValues:    "SELECT value, label FROM catalog_values WHERE field = ?1 ORDER BY value",
	CountValues:   "SELECT COUNT(*) FROM catalog_values WHERE field = ?1",
	DeleteByField: "DELETE FROM catalog_values WHERE field = ?1",
}

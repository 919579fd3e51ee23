package store

// Schema creates the three reference-data tables. Rule names and rating
// order numbers carry UNIQUE constraints so the engine's read-then-write
// uniqueness check has a hard backstop under concurrent saves.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	account TEXT NOT NULL,
	type TEXT NOT NULL,
	buy_quantity TEXT,
	buy_price TEXT,
	sell_quantity TEXT,
	sell_price TEXT,
	trade_date DATETIME,
	creation_date DATETIME,
	revision_date DATETIME,
	side TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	trader TEXT NOT NULL DEFAULT '',
	benchmark TEXT NOT NULL DEFAULT '',
	book TEXT NOT NULL DEFAULT '',
	security TEXT NOT NULL DEFAULT '',
	creation_name TEXT NOT NULL DEFAULT '',
	revision_name TEXT NOT NULL DEFAULT '',
	deal_name TEXT NOT NULL DEFAULT '',
	deal_type TEXT NOT NULL DEFAULT '',
	source_list_id TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS rules (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	json TEXT NOT NULL DEFAULT '',
	template TEXT NOT NULL DEFAULT '',
	sql_str TEXT NOT NULL DEFAULT '',
	sql_part TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS ratings (
	id TEXT PRIMARY KEY,
	moodys_rating TEXT NOT NULL DEFAULT '',
	sandp_rating TEXT NOT NULL DEFAULT '',
	fitch_rating TEXT NOT NULL DEFAULT '',
	order_number INTEGER NOT NULL UNIQUE
);

CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account);
`

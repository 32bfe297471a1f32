package sqlite

// Schema DDL. The database is the source of truth between runs, so every
// statement is idempotent: an existing database attaches without changes.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    name TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL,
    birthday TEXT,
    email TEXT,
    address TEXT
);`

	createContactPhones = `CREATE TABLE IF NOT EXISTS contact_phones (
    contact_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    phone TEXT NOT NULL,
    PRIMARY KEY (contact_name, position),
    FOREIGN KEY (contact_name) REFERENCES contacts(name)
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    name TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL,
    project_role TEXT NOT NULL,
    project_tasks TEXT NOT NULL DEFAULT ''
);`

	createNoteHobbies = `CREATE TABLE IF NOT EXISTS note_hobbies (
    note_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    hobby TEXT NOT NULL,
    PRIMARY KEY (note_name, position),
    FOREIGN KEY (note_name) REFERENCES notes(name)
);`

	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    saved_at TEXT NOT NULL
);`
)

// schemaStatements lists the DDL in dependency order.
var schemaStatements = []string{
	createContacts,
	createContactPhones,
	createNotes,
	createNoteHobbies,
	createSnapshots,
}

package contacts

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/Divine-mercyx/MILO/types"
	"github.com/Divine-mercyx/MILO/utils"
)

// Store persists contacts in sqlite. Contacts are unique by address; saving
// an existing address replaces its name.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the contact database at path. ":memory:" gives
// an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			address TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save inserts or replaces a contact. The name must be non-empty and the
// address must be address-shaped.
func (s *Store) Save(c types.Contact) error {
	if c.Name == "" {
		return types.NewValidationError("contact name cannot be empty")
	}
	if !utils.IsSuiAddress(c.Address) {
		return types.NewValidationError("contact address %q is not a valid Sui address", c.Address)
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO contacts (address, name) VALUES (?, ?)`, c.Address, c.Name)
	return err
}

// List returns the current contact set ordered by name. The result is the
// read-mostly snapshot the resolver consumes.
func (s *Store) List() ([]types.Contact, error) {
	rows, err := s.db.Query(`SELECT name, address FROM contacts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Contact
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.Name, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes a contact by address. Deleting an unknown address is not
// an error.
func (s *Store) Delete(address string) error {
	_, err := s.db.Exec(`DELETE FROM contacts WHERE address = ?`, address)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

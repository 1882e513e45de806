package repository

import "database/sql"

// SQLStore bundles the MySQL repositories behind one value so that it can
// serve as the box office store and the auth store at the same time.
type SQLStore struct {
	*HouseRepo
	*TicketRepo
	*UserRepo
	*TokenRepo
}

// NewSQLStore wires every repository to db.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		HouseRepo:  NewHouseRepo(db),
		TicketRepo: NewTicketRepo(db),
		UserRepo:   NewUserRepo(db),
		TokenRepo:  NewTokenRepo(db),
	}
}

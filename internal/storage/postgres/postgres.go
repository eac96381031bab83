package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventhub/internal/config"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Storage{DB: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			city        TEXT NOT NULL,
			date        TEXT NOT NULL,
			price       NUMERIC NOT NULL,
			venue       TEXT NOT NULL,
			image       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'active',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id          TEXT PRIMARY KEY,
			event_id    TEXT NOT NULL DEFAULT '',
			event_title TEXT NOT NULL,
			user_email  TEXT NOT NULL,
			quantity    INTEGER NOT NULL,
			status      TEXT NOT NULL DEFAULT 'confirmed',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`

	_, err := db.Exec(schema)

	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveEvent(event *models.Event) error {
	query := `
		INSERT INTO events (id, title, city, date, price, venue, image, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.DB.Exec(query,
		event.ID,
		event.Title,
		event.City,
		event.Date,
		event.Price,
		event.Venue,
		event.Image,
		event.Description,
		event.Status,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

func (s *Storage) GetActiveEvents() ([]models.Event, error) {
	// date is yyyy-mm-dd text, so lexicographic order is calendar order
	query := `
		SELECT id, title, city, date, price, venue, image, description, status, created_at
		FROM events
		WHERE status = $1
		ORDER BY date ASC`

	rows, err := s.DB.Query(query, models.EventStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.City,
			&event.Date,
			&event.Price,
			&event.Venue,
			&event.Image,
			&event.Description,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventByID(id string) (*models.Event, error) {
	query := `
		SELECT id, title, city, date, price, venue, image, description, status, created_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.City,
		&event.Date,
		&event.Price,
		&event.Venue,
		&event.Image,
		&event.Description,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) MarkEventDeleted(id string) error {
	query := `
		UPDATE events
		SET status = $1
		WHERE id = $2 AND status = $3`

	result, err := s.DB.Exec(query, models.EventStatusDeleted, id, models.EventStatusActive)
	if err != nil {
		return fmt.Errorf("failed to mark event deleted: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) RemoveEvent(id string) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) SaveBooking(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, event_id, event_title, user_email, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.Exec(query,
		booking.ID,
		booking.EventID,
		booking.EventTitle,
		booking.UserEmail,
		booking.Quantity,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

func (s *Storage) GetBookingsByUser(userEmail string) ([]models.Booking, error) {
	query := `
		SELECT id, event_id, event_title, user_email, quantity, status, created_at
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.EventTitle,
			&booking.UserEmail,
			&booking.Quantity,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// CancelBookingByID flips the booking to cancelled regardless of its current
// status, so cancelling an already-cancelled booking succeeds unchanged.
func (s *Storage) CancelBookingByID(id string) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
		RETURNING id, event_id, event_title, user_email, quantity, status, created_at`

	return s.scanCancelled(s.DB.QueryRow(query, models.BookingStatusCancelled, id))
}

// CancelBookingByUserAndTitle cancels exactly one non-cancelled booking for
// the user and title, the earliest-created match. Already-cancelled bookings
// never match, so a repeat call reports ErrBookingNotFound.
func (s *Storage) CancelBookingByUserAndTitle(userEmail, eventTitle string) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = (
			SELECT id FROM bookings
			WHERE user_email = $2 AND event_title = $3 AND status <> $1
			ORDER BY created_at ASC
			LIMIT 1
		)
		RETURNING id, event_id, event_title, user_email, quantity, status, created_at`

	return s.scanCancelled(s.DB.QueryRow(query, models.BookingStatusCancelled, userEmail, eventTitle))
}

func (s *Storage) scanCancelled(row *sql.Row) (*models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.EventTitle,
		&booking.UserEmail,
		&booking.Quantity,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return &booking, nil
}

// CancelBookingsForEvent cancels every non-cancelled booking referencing the
// event by id or by denormalized title. Zero matches is not an error.
func (s *Storage) CancelBookingsForEvent(eventID, eventTitle string) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE (event_id = $2 OR event_title = $3) AND status <> $1`

	_, err := s.DB.Exec(query, models.BookingStatusCancelled, eventID, eventTitle)
	if err != nil {
		return fmt.Errorf("failed to cancel bookings for event: %w", err)
	}

	return nil
}

// RemoveBookingsForEvent permanently deletes every booking referencing the
// event by id or by denormalized title, whatever its status.
func (s *Storage) RemoveBookingsForEvent(eventID, eventTitle string) error {
	query := `
		DELETE FROM bookings
		WHERE event_id = $1 OR event_title = $2`

	_, err := s.DB.Exec(query, eventID, eventTitle)
	if err != nil {
		return fmt.Errorf("failed to remove bookings for event: %w", err)
	}

	return nil
}

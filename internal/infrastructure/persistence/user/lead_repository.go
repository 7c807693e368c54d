// Package user provides the concrete SQL-based implementation of the lead
// repository.
package user

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/database"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// SQLLeadRepository is the SQL-based implementation of the LeadRepository.
type SQLLeadRepository struct {
	db     *database.Database
	logger *logging.ChanneledLogger
}

// NewSQLLeadRepository creates a new instance of the repository.
func NewSQLLeadRepository(db *database.Database, logger *logging.ChanneledLogger) *SQLLeadRepository {
	return &SQLLeadRepository{
		db:     db,
		logger: logger,
	}
}

// Store inserts a captured lead.
func (r *SQLLeadRepository) Store(lead *user.Lead) error {
	const query = `
		INSERT INTO leads (id, kind, name, email, payload, delivered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()

	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(lead.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode lead payload: %w", err)
	}

	delivered := 0
	if lead.Delivered {
		delivered = 1
	}

	if _, err := r.db.Conn.Exec(query, lead.ID, string(lead.Kind), lead.Name, lead.Email, string(payload), delivered, lead.CreatedAt); err != nil {
		r.logger.Database().Error("Failed to store lead", "error", err.Error(), "id", lead.ID)
		return fmt.Errorf("failed to store lead %s: %w", lead.ID, err)
	}

	r.logger.Database().Info("Lead stored", "id", lead.ID, "kind", lead.Kind, "duration", time.Since(start))
	return nil
}

// MarkDelivered flips the delivered flag once the email went out.
func (r *SQLLeadRepository) MarkDelivered(id string) error {
	const query = `UPDATE leads SET delivered = 1 WHERE id = ?`

	if _, err := r.db.Conn.Exec(query, id); err != nil {
		r.logger.Database().Error("Failed to mark lead delivered", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to mark lead %s delivered: %w", id, err)
	}
	return nil
}

// FindAll lists the most recent leads, newest first.
func (r *SQLLeadRepository) FindAll(limit int) ([]*user.Lead, error) {
	const query = `
		SELECT id, kind, name, email, payload, delivered, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT ?`

	start := time.Now()
	r.logger.Database().Debug("Loading leads", "limit", limit)

	rows, err := r.db.Conn.Query(query, limit)
	if err != nil {
		r.logger.Database().Error("Failed to load leads", "error", err.Error())
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}
	defer rows.Close()

	var leads []*user.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while scanning leads: %w", err)
	}

	r.logger.Database().Info("Leads loaded", "count", len(leads), "duration", time.Since(start))
	return leads, nil
}

func scanLead(rows *sql.Rows) (*user.Lead, error) {
	var lead user.Lead
	var kind, payload string
	var delivered int

	if err := rows.Scan(&lead.ID, &kind, &lead.Name, &lead.Email, &payload, &delivered, &lead.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan lead row: %w", err)
	}

	lead.Kind = user.LeadKind(kind)
	lead.Delivered = delivered != 0
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &lead.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload for lead %s: %w", lead.ID, err)
		}
	}

	return &lead, nil
}

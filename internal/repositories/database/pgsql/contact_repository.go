package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContactRepository struct {
	BaseRepository
}

// newPgxContactRepository creates a new repository for contact data.
func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

var FULL_CONTACT_SELECT_QUERY = `
SELECT
	c.contact_id, c.workspace_id, c.campaign_id,
	c.first_name, c.last_name, c.title, c.company_name, c.phone, c.email, c.status,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM contacts c
`

func scanContact(row pgx.CollectableRow) (domain.Contact, error) {
	var contact domain.Contact
	err := row.Scan(
		&contact.ContactID,
		&contact.WorkspaceID,
		&contact.CampaignID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Title,
		&contact.CompanyName,
		&contact.Phone,
		&contact.Email,
		&contact.Status,
		&contact.CreatedAt,
		&contact.CreatedBy,
		&contact.LastUpdatedAt,
		&contact.LastUpdatedBy,
	)
	return contact, err
}

func (r *PgxContactRepository) getContacts(ctx context.Context, filterQuery string, args ...any) ([]domain.Contact, error) {
	query := FULL_CONTACT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contacts", err)
	}
	defer rows.Close()

	contacts, err := pgx.CollectRows(rows, scanContact)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect contact rows", err)
	}
	return contacts, nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, workspaceID, contactID string) (*domain.Contact, error) {
	contacts, err := r.getContacts(ctx,
		`WHERE c.workspace_id = $1 AND c.contact_id = $2`,
		workspaceID, contactID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &contacts[0], nil
}

// ListContacts returns one keyset page ordered by (created_at, contact_id)
// ascending. A nil afterCreatedAt starts from the beginning.
func (r *PgxContactRepository) ListContacts(ctx context.Context, workspaceID, campaignID string, afterCreatedAt *time.Time, afterID string, limit int) ([]domain.Contact, error) {
	if afterCreatedAt != nil {
		return r.getContacts(ctx, `
			WHERE c.workspace_id = $1 AND c.campaign_id = $2
			AND (c.created_at, c.contact_id) > ($3, $4)
			ORDER BY c.created_at, c.contact_id
			LIMIT $5`,
			workspaceID, campaignID, *afterCreatedAt, afterID, limit)
	}
	return r.getContacts(ctx, `
		WHERE c.workspace_id = $1 AND c.campaign_id = $2
		ORDER BY c.created_at, c.contact_id
		LIMIT $3`,
		workspaceID, campaignID, limit)
}

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	return r.SaveContacts(ctx, []domain.Contact{contact})
}

// SaveContacts bulk-inserts a batch of contacts in one round trip.
func (r *PgxContactRepository) SaveContacts(ctx context.Context, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO contacts (
			contact_id, workspace_id, campaign_id,
			first_name, last_name, title, company_name, phone, email, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, contact := range contacts {
		batch.Queue(query,
			contact.ContactID,
			contact.WorkspaceID,
			contact.CampaignID,
			contact.FirstName,
			contact.LastName,
			contact.Title,
			contact.CompanyName,
			contact.Phone,
			contact.Email,
			contact.Status,
			contact.CreatedAt,
			contact.CreatedBy,
			contact.LastUpdatedAt,
			contact.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range contacts {
		if _, err := results.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				if pgErr.Code == "23505" { // unique_violation
					return apperrors.NewConflictError("contact already exists")
				}
				if pgErr.Code == "23503" { // foreign_key_violation
					return apperrors.NewValidationFailedError("workspace or campaign does not exist")
				}
			}
			return apperrors.NewAppError(500, "failed to save contacts", err)
		}
	}
	return nil
}

func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	query := `
		UPDATE contacts SET
			first_name = $3, last_name = $4, title = $5, company_name = $6,
			phone = $7, email = $8, status = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE workspace_id = $1 AND contact_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		contact.WorkspaceID,
		contact.ContactID,
		contact.FirstName,
		contact.LastName,
		contact.Title,
		contact.CompanyName,
		contact.Phone,
		contact.Email,
		contact.Status,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update contact "+contact.ContactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package model

import "time"

// Metadata is the audit block embedded in every persisted entity. The
// timestamp columns carry no db tag on purpose: the database defaults fill
// them, so the generic repository never writes them on insert or update.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

package entities

import "time"

// AdminConfigID is the fixed document id of the singleton config record.
// Creation is guarded by a conditional put on this key, so two concurrent
// init calls cannot both succeed.
const AdminConfigID = "admin-config"

// AdminConfig holds the two bcrypt-hashed admin secrets. Exactly one
// document exists system-wide.
type AdminConfig struct {
	ID                    string    `json:"id"`
	MasterPasswordHash    string    `json:"-"`
	SecondaryPasswordHash string    `json:"-"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

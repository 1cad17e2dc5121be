package entities

import "time"

// Setting is a key/value upsert record for site-wide configuration.
//
// Storage model (DynamoDB):
//   - PK: key
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CitedNumbers is the list of entry labels an answer cited
type CitedNumbers []string

// Value implements driver.Valuer for JSONB
func (c CitedNumbers) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *CitedNumbers) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*c = CitedNumbers{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*c = CitedNumbers{}
		return nil
	}

	if len(bytes) == 0 {
		*c = CitedNumbers{}
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// QueryLog records one answered question
type QueryLog struct {
	ID         uuid.UUID    `json:"id"`
	Question   string       `json:"question"`
	Language   Language     `json:"language"`
	Intent     Intent       `json:"intent"`
	Source     AnswerSource `json:"source"`
	Provider   string       `json:"provider,omitempty"`
	Fallback   bool         `json:"fallback"`
	NotFound   bool         `json:"not_found"`
	Cited      CitedNumbers `json:"cited"`
	DurationMs int64        `json:"duration_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}

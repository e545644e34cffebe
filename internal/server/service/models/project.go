package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProjectSummary — строка списка проектов, без самого документа.
type ProjectSummary struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectDetail — один проект вместе с kepler JSON документом.
//
// JSONData хранится и отдаётся как есть; сервер заглядывает внутрь
// только при применении фильтра по городу.
type ProjectDetail struct {
	ID       uuid.UUID
	Name     string
	JSONData json.RawMessage
}

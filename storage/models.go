package storage

import "time"

// BestScore is the lowest move count recorded for a difficulty tier.
type BestScore struct {
	Tier      string    `json:"tier"`
	Moves     int       `json:"moves"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// scoreItem is the persisted layout: the tier is the key and the move count
// is kept as a decimal string. Moves mirrors Value as a number so DynamoDB
// conditions can compare it.
type scoreItem struct {
	Tier      string    `dynamodbav:"PK"`
	Value     string    `dynamodbav:"Value"`
	Moves     int       `dynamodbav:"Moves,omitempty"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}

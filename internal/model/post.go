package model

import "time"

// Post is a community feed entry.
type Post struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"userId"`
	DisplayName string    `json:"displayName" bson:"displayName"`
	Body        string    `json:"body" bson:"body"`
	Likes       int       `json:"likes" bson:"likes"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

package model

import "time"

// Codespace is a code-addressable classroom session an admin creates to let
// participants join a shared activity. The join code is the external-facing
// identifier and never changes after creation.
type Codespace struct {
	Code             string    `json:"code" bson:"code"`
	AdminUserID      string    `json:"adminUserId" bson:"adminUserId"`
	AdminDisplayName string    `json:"adminDisplayName,omitempty" bson:"adminDisplayName,omitempty"`
	Name             string    `json:"name,omitempty" bson:"name,omitempty"`
	QuizID           *string   `json:"quizId,omitempty" bson:"quizId,omitempty"`
	Active           bool      `json:"active" bson:"active"`
	ExpiresAt        time.Time `json:"expiresAt" bson:"expiresAt"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

// CodespaceUpdate carries the only fields an admin may change after creation.
// Nil means "leave unchanged".
type CodespaceUpdate struct {
	Active *bool   `json:"active,omitempty"`
	QuizID *string `json:"quizId,omitempty"`
	Name   *string `json:"name,omitempty"`
}

// CodespaceView is the read-only projection returned to joining participants.
type CodespaceView struct {
	Code             string    `json:"code"`
	AdminDisplayName string    `json:"adminDisplayName,omitempty"`
	Name             string    `json:"name,omitempty"`
	QuizID           *string   `json:"quizId"`
	Active           bool      `json:"active"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// View projects a codespace into its participant-facing shape.
func (c *Codespace) View() *CodespaceView {
	return &CodespaceView{
		Code:             c.Code,
		AdminDisplayName: c.AdminDisplayName,
		Name:             c.Name,
		QuizID:           c.QuizID,
		Active:           c.Active,
		ExpiresAt:        c.ExpiresAt,
	}
}

// Expired reports whether the codespace's lifetime has passed at the given
// instant. Expiry is logical only; records are never hard-deleted.
func (c *Codespace) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

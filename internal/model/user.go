package model

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

type OrgType string

const (
	OrgSchool     OrgType = "school"
	OrgUniversity OrgType = "university"
	OrgNonprofit  OrgType = "nonprofit"
)

// RecognizedOrgTypes is the closed set of organization types the admin portal
// accepts. Anything else resolves to a denial even for role=admin.
var RecognizedOrgTypes = map[OrgType]bool{
	OrgSchool:     true,
	OrgUniversity: true,
	OrgNonprofit:  true,
}

// User is an identity record with its authorization role.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	DisplayName  string    `json:"displayName" bson:"displayName"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	PhotoURL     string    `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Role         Role      `json:"role" bson:"role"`
	OrgType      OrgType   `json:"orgType,omitempty" bson:"orgType,omitempty"`
	XP           int       `json:"xp" bson:"xp"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AdminUser is a dashboard account. Email is unique and stored lowercased.
// The password hash never leaves the process: json:"-" keeps it out of
// every API response.
type AdminUser struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	Name         string        `bson:"name" json:"name"`
	IsSuperAdmin bool          `bson:"is_super_admin" json:"is_super_admin"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}

func (a *AdminUser) Prepare() {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
}

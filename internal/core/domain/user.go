package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. It is the identity anchor: profiles and
// posts reference it by ID but never own it.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	AvatarURL    string    `json:"avatar" bson:"avatar"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

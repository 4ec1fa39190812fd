package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")
var ErrGithubProfileNotFound = errors.New("no github profile found")

// SocialLinks holds the fixed set of optional social URLs on a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

// Experience is a single work-history entry. Each entry carries its own
// generated ID, distinct from the owning profile's user ID.
type Experience struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Company     string     `json:"company" bson:"company"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time  `json:"from" bson:"from"`
	To          *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool       `json:"current" bson:"current"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Education is a single education entry, structured like Experience.
type Education struct {
	ID           string     `json:"id" bson:"id"`
	School       string     `json:"school" bson:"school"`
	Degree       string     `json:"degree" bson:"degree"`
	FieldOfStudy string     `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time  `json:"from" bson:"from"`
	To           *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool       `json:"current" bson:"current"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Profile is the one-to-one extension of a User, persisted and replaced as a
// whole document. Version is the optimistic-concurrency token checked by the
// repository on every save.
type Profile struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	UserID         string       `json:"user" bson:"user_id"`
	Company        string       `json:"company,omitempty" bson:"company,omitempty"`
	Website        string       `json:"website,omitempty" bson:"website,omitempty"`
	Location       string       `json:"location,omitempty" bson:"location,omitempty"`
	Status         string       `json:"status" bson:"status"`
	Skills         []string     `json:"skills" bson:"skills"`
	Bio            string       `json:"bio,omitempty" bson:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty" bson:"github_username,omitempty"`
	Social         SocialLinks  `json:"social" bson:"social"`
	Experience     []Experience `json:"experience" bson:"experience"`
	Education      []Education  `json:"education" bson:"education"`
	Version        int64        `json:"-" bson:"version"`
	UpdatedAt      time.Time    `json:"updated_at" bson:"updated_at"`
}

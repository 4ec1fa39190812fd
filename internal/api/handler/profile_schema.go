package handler

import (
	"time"

	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// profileRequest is the sparse create-or-update payload. Empty fields are
// treated as absent: the service leaves the stored value untouched. Status
// and skills requiredness is enforced by the service, before any store
// access.
type profileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
}

type experienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type educationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// --- Response types ---

// profileResponse is a profile with the denormalized owner view joined in.
// The embedded profile flattens into the JSON body, mirroring the document
// shape plus an "owner" object.
type profileResponse struct {
	*domain.Profile
	Owner ports.ProfileOwner `json:"owner"`
}

func toProfileResponse(d *ports.ProfileDetail) profileResponse {
	return profileResponse{Profile: d.Profile, Owner: d.Owner}
}

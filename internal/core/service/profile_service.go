package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

// ProfileService implements the profile aggregate use cases. Every mutation
// follows the same shape: load the whole profile, check it exists, mutate in
// memory, persist the whole document back with one version-checked save.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, logger: logger}
}

// CreateOrUpdate upserts the principal's profile. Status and skills are
// required and checked before any store access. On update, present fields
// replace the stored values and absent (empty) fields are left untouched —
// a merge, never a null-out.
func (s *ProfileService) CreateOrUpdate(ctx context.Context, principalID string, in ports.ProfileInput) (*domain.Profile, error) {
	if in.Status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}
	if in.Skills == "" {
		return nil, fmt.Errorf("%w: skills is required", domain.ErrValidation)
	}
	skills := parseSkills(in.Skills)

	profile, err := s.profiles.FindByUserID(ctx, principalID)
	switch {
	case err == nil:
		// existing profile: merge
	case errors.Is(err, domain.ErrProfileNotFound):
		profile = &domain.Profile{UserID: principalID}
	default:
		return nil, err
	}

	mergeProfileInput(profile, in)
	profile.Skills = skills
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Save(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("user_id", principalID).Msg("failed to save profile")
		return nil, err
	}

	s.logger.Info().Str("user_id", principalID).Msg("profile saved")
	return profile, nil
}

// GetMine returns the principal's own profile with the owner view joined in.
func (s *ProfileService) GetMine(ctx context.Context, principalID string) (*ports.ProfileDetail, error) {
	return s.GetByUserID(ctx, principalID)
}

// GetByUserID returns a profile by its owning user's ID, joined with the
// denormalized {name, avatar} view of that user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*ports.ProfileDetail, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	return &ports.ProfileDetail{
		Profile: profile,
		Owner:   ports.ProfileOwner{Name: user.Name, Avatar: user.AvatarURL},
	}, nil
}

// List returns all profiles with owner views. A profile whose user record is
// missing is skipped rather than failing the whole listing.
func (s *ProfileService) List(ctx context.Context) ([]*ports.ProfileDetail, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*ports.ProfileDetail, 0, len(profiles))
	for _, p := range profiles {
		user, err := s.users.FindByID(ctx, p.UserID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", p.UserID).Msg("skipping profile with missing user")
			continue
		}
		details = append(details, &ports.ProfileDetail{
			Profile: p,
			Owner:   ports.ProfileOwner{Name: user.Name, Avatar: user.AvatarURL},
		})
	}
	return details, nil
}

// Delete removes the principal's profile and the owning user account in one
// atomic operation.
func (s *ProfileService) Delete(ctx context.Context, principalID string) error {
	if _, err := s.profiles.FindByUserID(ctx, principalID); err != nil {
		return err
	}

	if err := s.profiles.DeleteWithUser(ctx, principalID); err != nil {
		s.logger.Error().Err(err).Str("user_id", principalID).Msg("failed to delete profile and user")
		return err
	}

	s.logger.Info().Str("user_id", principalID).Msg("profile and user deleted")
	return nil
}

// AddExperience prepends a new work-history entry. The profile must already
// exist; this operation never auto-creates one.
func (s *ProfileService) AddExperience(ctx context.Context, principalID string, in ports.ExperienceInput) (*domain.Profile, error) {
	if in.Title == "" || in.Company == "" || in.From.IsZero() {
		return nil, fmt.Errorf("%w: title, company and from are required", domain.ErrValidation)
	}

	profile, err := s.profiles.FindByUserID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		ID:          newEntryID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	profile.Experience = append([]domain.Experience{entry}, profile.Experience...)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveExperience filters out the entry with the given ID. An unmatched ID
// is a silent no-op: the unchanged profile is persisted and returned.
func (s *ProfileService) RemoveExperience(ctx context.Context, principalID, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	kept := profile.Experience[:0:0]
	for _, e := range profile.Experience {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	profile.Experience = kept
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddEducation prepends a new education entry, mirroring AddExperience.
func (s *ProfileService) AddEducation(ctx context.Context, principalID string, in ports.EducationInput) (*domain.Profile, error) {
	if in.School == "" || in.Degree == "" || in.FieldOfStudy == "" || in.From.IsZero() {
		return nil, fmt.Errorf("%w: school, degree, fieldofstudy and from are required", domain.ErrValidation)
	}

	profile, err := s.profiles.FindByUserID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		ID:           newEntryID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	profile.Education = append([]domain.Education{entry}, profile.Education...)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveEducation filters out the entry with the given ID, with the same
// silent no-op contract as RemoveExperience.
func (s *ProfileService) RemoveEducation(ctx context.Context, principalID, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	kept := profile.Education[:0:0]
	for _, e := range profile.Education {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	profile.Education = kept
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// mergeProfileInput copies every present (non-empty) scalar and social field
// onto the profile. Skills are handled by the caller.
func mergeProfileInput(p *domain.Profile, in ports.ProfileInput) {
	p.Status = in.Status
	if in.Company != "" {
		p.Company = in.Company
	}
	if in.Website != "" {
		p.Website = in.Website
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		p.GithubUsername = in.GithubUsername
	}
	if in.Youtube != "" {
		p.Social.Youtube = in.Youtube
	}
	if in.Twitter != "" {
		p.Social.Twitter = in.Twitter
	}
	if in.Facebook != "" {
		p.Social.Facebook = in.Facebook
	}
	if in.Instagram != "" {
		p.Social.Instagram = in.Instagram
	}
	if in.Linkedin != "" {
		p.Social.Linkedin = in.Linkedin
	}
}

// parseSkills splits a comma-separated list, trims each token, and drops
// empty ones, preserving input order.
func parseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// newEntryID returns a fresh 24-hex-char identifier for sub-collection
// entries (experience, education, comments).
func newEntryID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}

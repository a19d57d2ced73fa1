package staff

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/pkg/validator"
)

type MemberResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	NoonaEmployeeID    *string  `json:"noona_employee_id,omitempty"`
	ExcessThreshold    float64  `json:"excess_threshold"`
	PrimaryTrack       string   `json:"primary_track"`
	ExcludedCategories []string `json:"excluded_categories"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type CreateMemberRequest struct {
	Name               string   `json:"name"`
	NoonaEmployeeID    *string  `json:"noona_employee_id"`
	ExcessThreshold    float64  `json:"excess_threshold"`
	PrimaryTrack       string   `json:"primary_track"`
	ExcludedCategories []string `json:"excluded_categories"`
}

func (r *CreateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	switch Track(r.PrimaryTrack) {
	case TrackMaster, TrackAdmin:
	default:
		errs = append(errs, validator.ValidationError{Field: "primary_track", Message: "must be master or admin"})
	}

	if r.ExcessThreshold < 0 {
		errs = append(errs, validator.ValidationError{Field: "excess_threshold", Message: "must not be negative"})
	}

	for _, c := range r.ExcludedCategories {
		if !ValidCategory(c) {
			errs = append(errs, validator.ValidationError{Field: "excluded_categories", Message: "unknown category: " + c})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemberRequest struct {
	Name               *string  `json:"name"`
	NoonaEmployeeID    *string  `json:"noona_employee_id"`
	ExcessThreshold    *float64 `json:"excess_threshold"`
	PrimaryTrack       *string  `json:"primary_track"`
	ExcludedCategories []string `json:"excluded_categories"`
}

func (r *UpdateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if r.PrimaryTrack != nil {
		switch Track(*r.PrimaryTrack) {
		case TrackMaster, TrackAdmin:
		default:
			errs = append(errs, validator.ValidationError{Field: "primary_track", Message: "must be master or admin"})
		}
	}

	if r.ExcessThreshold != nil && *r.ExcessThreshold < 0 {
		errs = append(errs, validator.ValidationError{Field: "excess_threshold", Message: "must not be negative"})
	}

	for _, c := range r.ExcludedCategories {
		if !ValidCategory(c) {
			errs = append(errs, validator.ValidationError{Field: "excluded_categories", Message: "unknown category: " + c})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffService interface {
	List(ctx context.Context) ([]MemberResponse, error)
	Get(ctx context.Context, id string) (MemberResponse, error)
	Create(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)
	Update(ctx context.Context, id string, req UpdateMemberRequest) (MemberResponse, error)
	Delete(ctx context.Context, id string) error
}

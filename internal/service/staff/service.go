package staff

import (
	"context"
	"time"

	"github.com/simon1400/barbitch-admin/internal/domain/staff"
)

type StaffServiceImpl struct {
	repo staff.StaffRepository
}

func NewStaffService(repo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{repo: repo}
}

func (s *StaffServiceImpl) List(ctx context.Context) ([]staff.MemberResponse, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toResponse(m))
	}
	return responses, nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.MemberResponse, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return staff.MemberResponse{}, err
	}
	return toResponse(member), nil
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateMemberRequest) (staff.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.MemberResponse{}, err
	}

	member := staff.Member{
		Name:               req.Name,
		NoonaEmployeeID:    req.NoonaEmployeeID,
		ExcessThreshold:    req.ExcessThreshold,
		PrimaryTrack:       staff.Track(req.PrimaryTrack),
		ExcludedCategories: toCategories(req.ExcludedCategories),
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return staff.MemberResponse{}, err
	}
	return toResponse(created), nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateMemberRequest) (staff.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.MemberResponse{}, err
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return staff.MemberResponse{}, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.NoonaEmployeeID != nil {
		member.NoonaEmployeeID = req.NoonaEmployeeID
	}
	if req.ExcessThreshold != nil {
		member.ExcessThreshold = *req.ExcessThreshold
	}
	if req.PrimaryTrack != nil {
		member.PrimaryTrack = staff.Track(*req.PrimaryTrack)
	}
	if req.ExcludedCategories != nil {
		member.ExcludedCategories = toCategories(req.ExcludedCategories)
	}

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return staff.MemberResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toCategories(names []string) []staff.Category {
	categories := make([]staff.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, staff.Category(name))
	}
	return categories
}

func toResponse(m staff.Member) staff.MemberResponse {
	excluded := make([]string, 0, len(m.ExcludedCategories))
	for _, c := range m.ExcludedCategories {
		excluded = append(excluded, string(c))
	}

	return staff.MemberResponse{
		ID:                 m.ID,
		Name:               m.Name,
		NoonaEmployeeID:    m.NoonaEmployeeID,
		ExcessThreshold:    m.ExcessThreshold,
		PrimaryTrack:       string(m.PrimaryTrack),
		ExcludedCategories: excluded,
		CreatedAt:          m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

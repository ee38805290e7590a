package usecase

import (
	"log/slog"
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/kafka"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/metrics"
	profiledto "github.com/droschke/fleet-rate-service/internal/usecase/dto/profile"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type AssignmentEventPublisher interface {
	PublishAssignmentEvent(event kafka.AssignmentEvent) error
}

type ProfileUsecase interface {
	FindMatchingProfiles(cabCategory, shareCategory string, hasAirportLicense bool, shiftType string) ([]*domain.ShiftProfile, error)
	Matches(shiftID, profileID string, on domain.Date) (bool, error)
	AssignProfileToShift(input *profiledto.AssignProfileInput) (*domain.ShiftProfileAssignment, error)
	EndAssignment(shiftID string, end domain.Date) error
	CreateProfile(input *profiledto.CreateProfileInput) (*domain.ShiftProfile, error)
	UpdateProfile(input *profiledto.UpdateProfileInput) (*domain.ShiftProfile, error)
	DeleteProfile(profileID string) error
	AddRequirement(input *profiledto.AddRequirementInput) (*domain.ProfileAttributeRequirement, error)
	RemoveRequirement(requirementID string) error
	GetProfileByID(profileID string) (*domain.ShiftProfile, error)
	ListProfiles() ([]*domain.ShiftProfile, error)
}

type DefaultProfileUsecase struct {
	profileRepo    domain.ProfileRepository
	shiftRepo      domain.ShiftRepository
	attributeRepo  domain.AttributeValueRepository
	assignmentRepo domain.AssignmentRepository
	publisher      AssignmentEventPublisher
	metrics        *metrics.RateMetrics
	logger         *slog.Logger
}

func NewDefaultProfileUsecase(
	profileRepo domain.ProfileRepository,
	shiftRepo domain.ShiftRepository,
	attributeRepo domain.AttributeValueRepository,
	assignmentRepo domain.AssignmentRepository,
	publisher AssignmentEventPublisher,
	rateMetrics *metrics.RateMetrics,
	logger *slog.Logger,
) *DefaultProfileUsecase {
	return &DefaultProfileUsecase{
		profileRepo:    profileRepo,
		shiftRepo:      shiftRepo,
		attributeRepo:  attributeRepo,
		assignmentRepo: assignmentRepo,
		publisher:      publisher,
		metrics:        rateMetrics,
		logger:         logger,
	}
}

// FindMatchingProfiles returns the active profiles whose static
// filters accept the given shift attributes, ordered by sort order.
func (uc *DefaultProfileUsecase) FindMatchingProfiles(cabCategory, shareCategory string, hasAirportLicense bool, shiftType string) ([]*domain.ShiftProfile, error) {
	return uc.profileRepo.FindActiveMatchingStatic(cabCategory, shareCategory, hasAirportLicense, shiftType)
}

// Matches runs the full static + dynamic check for one shift against
// one profile. Static filters must pass first; then every attribute
// requirement on the profile must be satisfied by the shift's
// attribute set as valid on the given day. A profile with no
// requirements matches on static criteria alone.
func (uc *DefaultProfileUsecase) Matches(shiftID, profileID string, on domain.Date) (bool, error) {
	started := time.Now()

	shift, err := uc.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		return false, err
	}
	profile, err := uc.profileRepo.GetProfileByID(profileID)
	if err != nil {
		return false, err
	}

	matched, err := uc.evaluate(shift, profile, on)
	if err != nil {
		return false, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordProfileMatch(matched, time.Since(started).Seconds())
	}
	return matched, nil
}

func (uc *DefaultProfileUsecase) evaluate(shift *domain.Shift, profile *domain.ShiftProfile, on domain.Date) (bool, error) {
	if !profile.MatchesStatic(shift.CabCategory, shift.ShareCategory, shift.HasAirportLicense, shift.ShiftType) {
		return false, nil
	}
	if len(profile.Requirements) == 0 {
		return true, nil
	}

	attributes, err := uc.attributeRepo.FindValuesOn(shift.ID, on)
	if err != nil {
		return false, err
	}

	for _, requirement := range profile.Requirements {
		var actual *string
		if value, ok := attributes[requirement.AttributeTypeID]; ok {
			actual = &value
		}
		if !domain.RequirementSatisfied(requirement, actual) {
			return false, nil
		}
	}
	return true, nil
}

// AssignProfileToShift validates the static match and supersedes the
// shift's current assignment. Only the static filters are checked
// here: dynamic attributes may be attached to the shift after the
// profile is assigned. The supersede-and-create sequence runs inside
// one repository transaction.
func (uc *DefaultProfileUsecase) AssignProfileToShift(input *profiledto.AssignProfileInput) (*domain.ShiftProfileAssignment, error) {
	shift, err := uc.shiftRepo.GetShiftByID(input.ShiftID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetProfileByID(input.ProfileID)
	if err != nil {
		return nil, err
	}

	if !profile.Active {
		return nil, domain.NewValidationError("profile", "profile is not active")
	}
	if !profile.MatchesStatic(shift.CabCategory, shift.ShareCategory, shift.HasAirportLicense, shift.ShiftType) {
		return nil, domain.NewValidationError("profile", "shift does not satisfy the profile's static filters")
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	assignment := &domain.ShiftProfileAssignment{
		ID:         idGenerator(),
		ShiftID:    input.ShiftID,
		ProfileID:  input.ProfileID,
		StartDate:  input.StartDate,
		Reason:     input.Reason,
		AssignedBy: input.AssignedBy,
	}

	if err := uc.assignmentRepo.Assign(assignment); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordAssignment(profile.Code)
	}
	uc.publishAssignmentEvent(kafka.EventProfileAssigned, assignment, profile.Code)

	uc.logger.Info("profile assigned to shift",
		"shift_id", input.ShiftID,
		"profile_code", profile.Code,
		"start_date", input.StartDate.String(),
		"assigned_by", input.AssignedBy)

	return assignment, nil
}

// EndAssignment closes the shift's open assignment on the given day.
func (uc *DefaultProfileUsecase) EndAssignment(shiftID string, end domain.Date) error {
	assignment, err := uc.assignmentRepo.GetActiveByShiftID(shiftID)
	if err != nil {
		return err
	}
	if end.Before(assignment.StartDate) {
		return domain.NewValidationError("end_date", "end date is before assignment start")
	}

	if err := uc.assignmentRepo.EndActive(shiftID, end); err != nil {
		return err
	}

	assignment.EndDate = &end
	uc.publishAssignmentEvent(kafka.EventAssignmentEnded, assignment, "")
	return nil
}

func (uc *DefaultProfileUsecase) CreateProfile(input *profiledto.CreateProfileInput) (*domain.ShiftProfile, error) {
	if input.Code == "" {
		return nil, domain.NewValidationError("code", "profile code is required")
	}
	if existing, err := uc.profileRepo.GetProfileByCode(input.Code); err == nil && existing != nil {
		return nil, domain.NewValidationError("code", "profile code already exists")
	}

	profile := &domain.ShiftProfile{
		ID:                uuid.New().String(),
		Code:              input.Code,
		Name:              input.Name,
		CabCategory:       input.CabCategory,
		ShareCategory:     input.ShareCategory,
		HasAirportLicense: input.HasAirportLicense,
		ShiftType:         input.ShiftType,
		Category:          input.Category,
		DisplayColor:      input.DisplayColor,
		SortOrder:         input.SortOrder,
		Active:            true,
		SystemProfile:     input.SystemProfile,
	}

	if err := uc.profileRepo.CreateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile edits a profile in place. System profiles are
// editable, only their deletion is blocked.
func (uc *DefaultProfileUsecase) UpdateProfile(input *profiledto.UpdateProfileInput) (*domain.ShiftProfile, error) {
	profile, err := uc.profileRepo.GetProfileByID(input.ProfileID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.CabCategory = input.CabCategory
	profile.ShareCategory = input.ShareCategory
	profile.HasAirportLicense = input.HasAirportLicense
	profile.ShiftType = input.ShiftType
	profile.Category = input.Category
	profile.DisplayColor = input.DisplayColor
	profile.SortOrder = input.SortOrder
	profile.Active = input.Active

	if err := uc.profileRepo.UpdateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *DefaultProfileUsecase) DeleteProfile(profileID string) error {
	profile, err := uc.profileRepo.GetProfileByID(profileID)
	if err != nil {
		return err
	}
	if err := profile.Deletable(); err != nil {
		return err
	}
	return uc.profileRepo.DeleteProfile(profileID)
}

func (uc *DefaultProfileUsecase) AddRequirement(input *profiledto.AddRequirementInput) (*domain.ProfileAttributeRequirement, error) {
	profile, err := uc.profileRepo.GetProfileByID(input.ProfileID)
	if err != nil {
		return nil, err
	}

	for _, existing := range profile.Requirements {
		if existing.AttributeTypeID == input.AttributeTypeID {
			return nil, domain.NewValidationError("attribute_type", "profile already has a requirement for this attribute type")
		}
	}

	requirement := &domain.ProfileAttributeRequirement{
		ID:              uuid.New().String(),
		ProfileID:       input.ProfileID,
		AttributeTypeID: input.AttributeTypeID,
		IsRequired:      input.IsRequired,
		ExpectedValue:   input.ExpectedValue,
	}

	if err := uc.profileRepo.AddRequirement(requirement); err != nil {
		return nil, err
	}
	return requirement, nil
}

func (uc *DefaultProfileUsecase) RemoveRequirement(requirementID string) error {
	return uc.profileRepo.RemoveRequirement(requirementID)
}

func (uc *DefaultProfileUsecase) GetProfileByID(profileID string) (*domain.ShiftProfile, error) {
	return uc.profileRepo.GetProfileByID(profileID)
}

func (uc *DefaultProfileUsecase) ListProfiles() ([]*domain.ShiftProfile, error) {
	return uc.profileRepo.FindAllProfiles()
}

func (uc *DefaultProfileUsecase) publishAssignmentEvent(eventType string, assignment *domain.ShiftProfileAssignment, profileCode string) {
	if uc.publisher == nil {
		return
	}

	event := kafka.AssignmentEvent{
		EventType:    eventType,
		AssignmentID: assignment.ID,
		ShiftID:      assignment.ShiftID,
		ProfileID:    assignment.ProfileID,
		ProfileCode:  profileCode,
		StartDate:    assignment.StartDate.String(),
		AssignedBy:   assignment.AssignedBy,
	}
	if assignment.EndDate != nil {
		event.EndDate = assignment.EndDate.String()
	}

	if err := uc.publisher.PublishAssignmentEvent(event); err != nil {
		uc.logger.Error("failed to publish assignment event",
			"event_type", eventType,
			"shift_id", assignment.ShiftID,
			"error", err.Error())
	}
}

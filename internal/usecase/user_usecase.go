package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"gym-portal/internal/converter"
	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/domain/entity"
	"gym-portal/internal/domain/repository"
	"gym-portal/internal/service"
	"gym-portal/pkg/bmi"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
}

type userUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	userRepo             repository.UserRepository
	memberProfileRepo    repository.MemberProfileRepository
	personalInfoRepo     repository.PersonalInfoRepository
	healthInfoRepo       repository.HealthInfoRepository
	medicalConditionRepo repository.MedicalConditionRepository
	userCache            service.UserCache
	events               service.MemberEventPublisher
	hashCost             int
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	memberProfileRepo repository.MemberProfileRepository,
	personalInfoRepo repository.PersonalInfoRepository,
	healthInfoRepo repository.HealthInfoRepository,
	medicalConditionRepo repository.MedicalConditionRepository,
	userCache service.UserCache,
	events service.MemberEventPublisher,
	hashCost int,
) UserUsecase {
	if userCache == nil {
		userCache = service.NoopUserCache{}
	}
	if events == nil {
		events = service.NoopMemberEventPublisher{}
	}
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &userUsecase{
		db:                   db,
		log:                  log,
		userRepo:             userRepo,
		memberProfileRepo:    memberProfileRepo,
		personalInfoRepo:     personalInfoRepo,
		healthInfoRepo:       healthInfoRepo,
		medicalConditionRepo: medicalConditionRepo,
		userCache:            userCache,
		events:               events,
		hashCost:             hashCost,
	}
}

// ListUsers reads through the users cache. Cache failures only cost a
// database round trip.
func (u *userUsecase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	cached, ok, err := u.userCache.GetUsers(ctx)
	if err != nil {
		u.log.Warnf("Failed to read users cache: %+v", err)
	}
	if ok {
		return cached, nil
	}

	users, err := u.userRepo.FindAll(ctx, u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	responses := converter.UsersToResponses(users)
	if err := u.userCache.SetUsers(ctx, responses); err != nil {
		u.log.Warnf("Failed to fill users cache: %+v", err)
	}
	return responses, nil
}

// Signup persists one registration as user, member profile, personal info,
// health info and medical conditions in a single transaction.
func (u *userUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if !req.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	p := req.PersonalInfo
	h := req.HealthInfo

	birthDate, err := parseDate(p.Birthdate)
	if err != nil {
		return nil, err
	}

	health, err := buildHealthInfo(h)
	if err != nil {
		return nil, err
	}

	conditions, err := buildConditions(h)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), u.hashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		UserName:       p.Username,
		Email:          p.Email,
		PasswordHashed: string(hashedPassword),
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		u.log.WithFields(pgErrorFields(err)).Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	firstName, lastName := converter.SplitName(p.FirstName, p.LastName, p.Username)
	profile := &entity.MemberProfile{
		UserID:      user.UserID,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: p.Phone,
	}
	if err := u.memberProfileRepo.Create(ctx, tx, profile); err != nil {
		u.log.WithFields(pgErrorFields(err)).Warnf("Failed to create member profile: %+v", err)
		return nil, err
	}

	personal := &entity.PersonalInfo{
		ProfileID:   profile.ProfileID,
		Gender:      p.Gender,
		Nationality: strings.TrimSpace(p.Nationality),
		BirthDate:   birthDate,
		FitnessType: strings.TrimSpace(p.FitnessType),
		FitnessGoal: strings.TrimSpace(p.FitnessGoal),
	}
	if err := u.personalInfoRepo.Create(ctx, tx, personal); err != nil {
		u.log.WithFields(pgErrorFields(err)).Warnf("Failed to create personal info: %+v", err)
		return nil, err
	}

	health.ProfileID = profile.ProfileID
	if err := u.healthInfoRepo.Create(ctx, tx, health); err != nil {
		u.log.WithFields(pgErrorFields(err)).Warnf("Failed to create health info: %+v", err)
		return nil, err
	}

	if len(conditions) > 0 {
		for i := range conditions {
			conditions[i].HealthInfoID = health.HealthInfoID
		}
		if err := u.medicalConditionRepo.CreateBatch(ctx, tx, conditions); err != nil {
			u.log.WithFields(pgErrorFields(err)).Warnf("Failed to create medical conditions: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.afterSignup(ctx, user)

	return converter.UserToSignupResponse(user), nil
}

// afterSignup runs the post-commit side effects. The registration already
// succeeded, so failures here are logged and swallowed.
func (u *userUsecase) afterSignup(ctx context.Context, user *entity.User) {
	if err := u.userCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate users cache: %+v", err)
	}

	event := service.MemberRegisteredEvent{
		Event:      service.EventMemberRegistered,
		UserID:     user.UserID,
		Username:   user.UserName,
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := u.events.PublishRegistered(ctx, event); err != nil {
		u.log.Warnf("Failed to publish %s for user %d: %+v", event.Event, user.UserID, err)
	}
}

// Accepted measurement range after unit conversion. It keeps the stored
// weight, height and BMI inside their DECIMAL(6,2) columns.
const (
	maxWeightKG = 650
	minHeightCM = 50
	maxHeightCM = 280
)

// buildHealthInfo converts the submitted measurements to kilograms and
// centimeters and recomputes the BMI. Blank measurements are stored as zero.
func buildHealthInfo(h dto.HealthInfoForm) (*entity.HealthInfo, error) {
	weight, err := parseMeasurement(h.Weight)
	if err != nil {
		return nil, err
	}
	height, err := parseMeasurement(h.Height)
	if err != nil {
		return nil, err
	}

	weightUnit := bmi.ParseWeightUnit(h.WeightUnit)
	heightUnit := bmi.ParseHeightUnit(h.HeightUnit)

	weightKG := bmi.ToKilograms(weight, weightUnit)
	heightCM := bmi.ToMeters(height, heightUnit) * 100
	if weight > 0 && weightKG > maxWeightKG {
		return nil, ErrInvalidMeasurement
	}
	if height > 0 && (heightCM < minHeightCM || heightCM > maxHeightCM) {
		return nil, ErrInvalidMeasurement
	}

	info := &entity.HealthInfo{
		WeightKG:     bmi.Round(weightKG, 2),
		HeightCM:     bmi.Round(heightCM, 2),
		HealthStatus: entity.HealthStatusHealthy,
	}
	if result, ok := bmi.Calculate(weight, weightUnit, height, heightUnit); ok {
		info.BMI = bmi.Round(result.BMI, 2)
	}
	if h.HasConditions == "yes" {
		info.HealthStatus = entity.HealthStatusHasConditions
	}
	return info, nil
}

// buildConditions keeps submission order. Conditions are ignored unless the
// member answered yes.
func buildConditions(h dto.HealthInfoForm) ([]entity.MedicalCondition, error) {
	if h.HasConditions != "yes" {
		return nil, nil
	}

	conditions := make([]entity.MedicalCondition, 0, len(h.MedicalConditions))
	for _, c := range h.MedicalConditions {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, ErrInvalidConditions
		}
		start, err := parseDate(c.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(c.EndDate)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, entity.MedicalCondition{
			ConditionName:        name,
			ConditionDescription: c.Notes(),
			StartDate:            start,
			EndDate:              end,
		})
	}
	return conditions, nil
}

func parseMeasurement(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrInvalidMeasurement
	}
	return v, nil
}

func parseDate(raw string) (*datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	d := datatypes.Date(t)
	return &d, nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/LikithaGatta/PlatePlanner/dto"
	"github.com/LikithaGatta/PlatePlanner/internal/repository"
	"github.com/LikithaGatta/PlatePlanner/model"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 7 * 24 * time.Hour

// UserStore is the users collection surface the auth service needs.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) error
	Save(ctx context.Context, u *model.User) error
	EmailTaken(ctx context.Context, email string, exclude bson.ObjectID) (bool, error)
}

type AuthService struct {
	Users  UserStore
	Secret string
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{Users: users, Secret: secret}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterReq) (string, *model.User, error) {
	if _, err := s.Users.FindByEmail(ctx, req.Email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	name := req.Name
	if name == "" {
		name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}
	firstName := req.FirstName
	if firstName == "" {
		firstName = req.Name
	}

	now := time.Now().UTC()
	user := &model.User{
		Name:                name,
		Email:               req.Email,
		Password:            string(hashed),
		FirstName:           firstName,
		LastName:            req.LastName,
		Allergies:           []string{},
		DietaryRestrictions: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginReq) (string, *model.User, error) {
	user, err := s.Users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.UpdatedAt = time.Now().UTC()
	return s.Users.Save(ctx, user)
}

func (s *AuthService) GetProfile(ctx context.Context, userID bson.ObjectID) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// UpdateProfile applies the supplied fields only. An email change is checked
// for uniqueness against every other user first.
func (s *AuthService) UpdateProfile(ctx context.Context, userID bson.ObjectID, req dto.UpdateProfileReq) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.Users.EmailTaken(ctx, *req.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Height != nil {
		user.Height = *req.Height
	}
	if req.Weight != nil {
		user.Weight = *req.Weight
	}
	if req.GoalType != nil {
		user.GoalType = *req.GoalType
	}
	if req.CalorieGoal != nil {
		user.CalorieGoal = *req.CalorieGoal
	}
	if req.Allergies != nil {
		user.Allergies = *req.Allergies
	}
	if req.DietaryRestrictions != nil {
		user.DietaryRestrictions = *req.DietaryRestrictions
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(userID bson.ObjectID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Secret))
}

package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

// Claims is the JWT payload issued on login and parsed by the auth middleware.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

const tokenLifetime = 24 * time.Hour

type AuthService interface {
	Register(username, email, phone, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	ParseToken(tokenString string) (*models.Principal, error)
}

type authService struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	jwtSecret    []byte
}

func NewAuthService(userRepo repository.UserRepository, referralRepo repository.ReferralRepository, jwtSecret string) AuthService {
	return &authService{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		jwtSecret:    []byte(jwtSecret),
	}
}

func (s *authService) Register(username, email, phone, password string) (*models.User, string, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", apperrors.BusinessRule("A user with this email already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.FromDB(err, "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", apperrors.FromDB(err, "")
	}

	// Every account gets a referral code it can share.
	referral := &models.Referral{
		ReferrerID:   user.ID,
		ReferralCode: GenerateReferralCode(),
	}
	if err := s.referralRepo.Create(referral); err != nil {
		return nil, "", apperrors.FromDB(err, "")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", apperrors.Unauthorized("Invalid email or password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("Invalid email or password.")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ParseToken(tokenString string) (*models.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token.")
	}

	return &models.Principal{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}, nil
}

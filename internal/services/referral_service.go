package services

import (
	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

// RewardPoints credited to the referrer when their code is claimed.
const RewardPoints = 100

type ReferralService interface {
	CreateCode(principal models.Principal) (*models.Referral, error)
	ListMine(principal models.Principal) ([]models.Referral, error)
	// Apply claims a referral code for the caller. A code is claimed at most
	// once; a second attempt fails without touching reward points.
	Apply(principal models.Principal, code string) (*models.Referral, error)
}

type referralService struct {
	referralRepo repository.ReferralRepository
}

func NewReferralService(referralRepo repository.ReferralRepository) ReferralService {
	return &referralService{referralRepo: referralRepo}
}

func (s *referralService) CreateCode(principal models.Principal) (*models.Referral, error) {
	referral := &models.Referral{
		ReferrerID:   principal.UserID,
		ReferralCode: GenerateReferralCode(),
	}
	if err := s.referralRepo.Create(referral); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return referral, nil
}

func (s *referralService) ListMine(principal models.Principal) ([]models.Referral, error) {
	return s.referralRepo.GetByReferrer(principal.UserID)
}

func (s *referralService) Apply(principal models.Principal, code string) (*models.Referral, error) {
	if code == "" {
		return nil, apperrors.Validation("Referral code is required.")
	}

	affected, err := s.referralRepo.Claim(code, principal.UserID, RewardPoints)
	if err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	if affected == 0 {
		return nil, apperrors.BusinessRule("Invalid or already used referral code.")
	}

	referral, err := s.referralRepo.GetByCode(code)
	if err != nil {
		return nil, apperrors.FromDB(err, "Referral not found.")
	}
	return referral, nil
}

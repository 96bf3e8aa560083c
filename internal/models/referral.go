package models

import (
	"time"
)

// Referral is a single-use invitation code. ReferredUserID is set at most
// once; the claim is guarded by a conditional update on the unclaimed row.
type Referral struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ReferrerID     uint      `json:"referrer_id" gorm:"not null"`
	ReferralCode   string    `json:"referral_code" gorm:"size:10;unique;not null"`
	ReferredUserID *uint     `json:"referred_user_id" gorm:"uniqueIndex"`
	RewardPoints   int       `json:"reward_points" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type ReferralHandler struct {
	referralService services.ReferralService
}

func NewReferralHandler(referralService services.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

func (h *ReferralHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	referrals, err := h.referralService.ListMine(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, referrals)
}

func (h *ReferralHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	referral, err := h.referralService.CreateCode(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, referral)
}

type applyReferralRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
}

func (h *ReferralHandler) Apply(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req applyReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Referral code is required."))
		return
	}

	referral, err := h.referralService.Apply(p, req.ReferralCode)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Referral code applied successfully!",
		"reward_points": referral.RewardPoints,
	})
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/application/service"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/dto/request"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/dto/response"
)

// MembershipHandler handles membership tier and member HTTP requests
type MembershipHandler struct {
	membershipService *service.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// CreateTier handles creating a membership tier. Admin only.
func (h *MembershipHandler) CreateTier(c *gin.Context) {
	var req request.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tier, err := h.membershipService.CreateTier(c.Request.Context(), &service.CreateTierInput{
		Name:           req.Name,
		Price:          req.Price,
		DurationMonths: req.DurationMonths,
		BenefitAmount:  req.BenefitAmount,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Membership tier created successfully", tier)
}

// ListTiers handles listing the tier catalogue
func (h *MembershipHandler) ListTiers(c *gin.Context) {
	tiers, err := h.membershipService.ListTiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership tiers retrieved successfully", tiers)
}

// GetTier handles retrieving a single tier
func (h *MembershipHandler) GetTier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tier ID")
		return
	}

	tier, err := h.membershipService.GetTier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership tier retrieved successfully", tier)
}

// ListClientMemberships handles listing a client's membership purchases
func (h *MembershipHandler) ListClientMemberships(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	members, err := h.membershipService.ListClientMemberships(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Memberships retrieved successfully", members)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/usecase"
	"souqly/pkg/response"
)

type UserHandler struct {
	userUseCase   *usecase.UserUseCase
	reviewUseCase *usecase.ReviewUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, reviewUseCase *usecase.ReviewUseCase) *UserHandler {
	return &UserHandler{
		userUseCase:   userUseCase,
		reviewUseCase: reviewUseCase,
	}
}

type updateProfileRequest struct {
	Username    string `json:"username" validate:"omitempty,min=3"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	Bio         string `json:"bio" validate:"omitempty,max=500"`
	AvatarID    int    `json:"avatar_id" validate:"gte=0"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
		Bio:         req.Bio,
		AvatarID:    req.AvatarID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// GetSellerProfile is the public profile page: the user record plus their
// review aggregate.
func (h *UserHandler) GetSellerProfile(c echo.Context) error {
	sellerID := c.Param("id")

	user, err := h.userUseCase.GetProfile(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListSellerReviews(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user":    user,
		"rating":  reviews.Summary,
		"reviews": reviews.Reviews,
	})
}

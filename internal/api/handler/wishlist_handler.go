package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/ports"
)

type WishlistHandler struct {
	wishlist ports.WishlistService
}

func NewWishlistHandler(wishlist ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

type wishlistResponse struct {
	Success  bool     `json:"success"`
	Wishlist []string `json:"wishlist"`
}

// Toggle adds the listing to the caller's wishlist, or removes it when
// already present.
//
// @Summary      Toggle wishlist entry
// @Tags         wishlist
// @Produce      json
// @Param        id   path      string  true  "Listing ID"
// @Success      200  {object}  wishlistResponse
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/wishlist/{id} [put]
func (h *WishlistHandler) Toggle(c echo.Context) error {
	ids, err := h.wishlist.Toggle(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, wishlistResponse{Success: true, Wishlist: ids})
}

// List returns the caller's wishlisted listings.
//
// @Summary      Get wishlist
// @Tags         wishlist
// @Produce      json
// @Success      200  {array}   domain.Listing
// @Failure      401  {object}  errorBody
// @Router       /api/wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	listings, err := h.wishlist.List(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

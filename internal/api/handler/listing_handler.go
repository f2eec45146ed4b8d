package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/ports"
)

type ListingHandler struct {
	listings ports.ListingService
}

func NewListingHandler(listings ports.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Create publishes a listing owned by the caller.
//
// @Summary      Create listing
// @Tags         listing
// @Accept       json
// @Produce      json
// @Param        body  body      listingRequest  true  "Listing"
// @Success      201   {object}  domain.Listing
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Router       /api/listing/create [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req listingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	listing, err := h.listings.Create(c.Request().Context(), identity(c), toListing(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, listing)
}

// Update replaces a listing the caller owns.
//
// @Summary      Update listing
// @Tags         listing
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Listing ID"
// @Param        body  body      listingRequest  true  "Listing"
// @Success      200   {object}  domain.Listing
// @Failure      403   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/listing/update/{id} [post]
func (h *ListingHandler) Update(c echo.Context) error {
	var req listingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	listing, err := h.listings.Update(c.Request().Context(), identity(c), c.Param("id"), toListing(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Delete removes a listing the caller owns.
//
// @Summary      Delete listing
// @Tags         listing
// @Produce      json
// @Param        id   path      string  true  "Listing ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/listing/delete/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.listings.Delete(c.Request().Context(), identity(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Listing deleted"})
}

// Get returns a single listing.
//
// @Summary      Get listing
// @Tags         listing
// @Produce      json
// @Param        id   path      string  true  "Listing ID"
// @Success      200  {object}  domain.Listing
// @Failure      404  {object}  errorBody
// @Router       /api/listing/get/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.listings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Search runs the public listing search.
//
// @Summary      Search listings
// @Tags         listing
// @Produce      json
// @Param        searchTerm  query     string  false  "Case-insensitive name match"
// @Param        type        query     string  false  "rent, sale or all"
// @Param        offer       query     bool    false  "Only offers"
// @Param        furnished   query     bool    false  "Only furnished"
// @Param        parking     query     bool    false  "Only with parking"
// @Param        city        query     string  false  "City, exact and case-insensitive"
// @Param        minPrice    query     number  false  "Minimum regular price"
// @Param        maxPrice    query     number  false  "Maximum regular price"
// @Param        sort        query     string  false  "createdAt or regularPrice"
// @Param        order       query     string  false  "asc or desc"
// @Param        limit       query     int     false  "Page size (default 9, max 100)"
// @Param        startIndex  query     int     false  "Offset"
// @Success      200         {array}   domain.Listing
// @Failure      400         {object}  errorBody
// @Router       /api/listing/get [get]
func (h *ListingHandler) Search(c echo.Context) error {
	f, err := parseListingFilter(c)
	if err != nil {
		return err
	}

	listings, err := h.listings.Search(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// ByUser returns every listing owned by the caller.
//
// @Summary      List a user's listings
// @Tags         listing
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   domain.Listing
// @Failure      403  {object}  errorBody
// @Router       /api/listing/user/{id} [get]
func (h *ListingHandler) ByUser(c echo.Context) error {
	listings, err := h.listings.ListByOwner(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// parseListingFilter reads the search query string. Only the literal "true"
// narrows on a boolean flag; numeric parameters must parse.
func parseListingFilter(c echo.Context) (ports.ListingFilter, error) {
	f := ports.ListingFilter{
		SearchTerm: c.QueryParam("searchTerm"),
		Type:       c.QueryParam("type"),
		City:       c.QueryParam("city"),
		SortBy:     c.QueryParam("sort"),
		Ascending:  strings.EqualFold(c.QueryParam("order"), "asc"),
		Offer:      c.QueryParam("offer") == "true",
		Furnished:  c.QueryParam("furnished") == "true",
		Parking:    c.QueryParam("parking") == "true",
	}

	var minPrice, maxPrice float64
	err := echo.QueryParamsBinder(c).
		Int("limit", &f.Limit).
		Int("startIndex", &f.Offset).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		BindError()
	if err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "Invalid search parameters")
	}

	if c.QueryParam("minPrice") != "" {
		f.MinPrice = &minPrice
	}
	if c.QueryParam("maxPrice") != "" {
		f.MaxPrice = &maxPrice
	}
	return f, nil
}

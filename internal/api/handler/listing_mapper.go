package handler

import (
	"github.com/propertyhub/marketplace/internal/core/domain"
)

// --- Request → Domain ---

func toListing(req listingRequest) *domain.Listing {
	l := &domain.Listing{
		Name:              req.Name,
		Description:       req.Description,
		Address:           req.Address,
		RegularPrice:      req.RegularPrice,
		DiscountPrice:     req.DiscountPrice,
		Bathrooms:         req.Bathrooms,
		Bedrooms:          req.Bedrooms,
		Furnished:         req.Furnished,
		Parking:           req.Parking,
		Type:              req.Type,
		Offer:             req.Offer,
		ImageURLs:         req.ImageURLs,
		PropertyType:      req.PropertyType,
		City:              req.City,
		Locality:          req.Locality,
		Pincode:           req.Pincode,
		Landmark:          req.Landmark,
		BuiltUpArea:       req.BuiltUpArea,
		FloorNumber:       req.FloorNumber,
		TotalFloors:       req.TotalFloors,
		MaintenanceCharge: req.MaintenanceCharge,
		SecurityDeposit:   req.SecurityDeposit,
		Negotiable:        req.Negotiable,
		FurnishingType:    req.FurnishingType,
		Amenities:         toAmenities(req.Amenities),
		Immediate:         req.Immediate,
		ShowPhone:         req.ShowPhone,
		WhatsappEnabled:   req.WhatsappEnabled,
		VideoTourLink:     req.VideoTourLink,
		Location: domain.Location{
			Lat: req.Location.Lat,
			Lng: req.Location.Lng,
		},
	}
	if req.AvailableFrom != nil {
		l.AvailableFrom = req.AvailableFrom.UTC()
	}
	if l.ImageURLs == nil {
		l.ImageURLs = []string{}
	}
	return l
}

func toAmenities(a amenitiesRequest) domain.Amenities {
	return domain.Amenities{
		Parking:     a.Parking,
		Lift:        a.Lift,
		PowerBackup: a.PowerBackup,
		WaterSupply: a.WaterSupply,
		Security:    a.Security,
		Gym:         a.Gym,
	}
}

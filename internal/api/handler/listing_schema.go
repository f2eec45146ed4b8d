package handler

import "time"

type locationRequest struct {
	Lat *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
}

type amenitiesRequest struct {
	Parking     bool `json:"parking"`
	Lift        bool `json:"lift"`
	PowerBackup bool `json:"powerBackup"`
	WaterSupply bool `json:"waterSupply"`
	Security    bool `json:"security"`
	Gym         bool `json:"gym"`
}

type listingRequest struct {
	Name              string           `json:"name"              validate:"required"`
	Description       string           `json:"description"`
	Address           string           `json:"address"`
	RegularPrice      float64          `json:"regularPrice"      validate:"gte=0"`
	DiscountPrice     float64          `json:"discountPrice"     validate:"gte=0"`
	Bathrooms         int              `json:"bathrooms"         validate:"gte=0"`
	Bedrooms          int              `json:"bedrooms"          validate:"gte=0"`
	Furnished         bool             `json:"furnished"`
	Parking           bool             `json:"parking"`
	Type              string           `json:"type"              validate:"required,oneof=rent sale"`
	Offer             bool             `json:"offer"`
	ImageURLs         []string         `json:"imageUrls"`
	PropertyType      string           `json:"propertyType"`
	City              string           `json:"city"`
	Locality          string           `json:"locality"`
	Pincode           string           `json:"pincode"`
	Landmark          string           `json:"landmark"`
	BuiltUpArea       float64          `json:"builtUpArea"       validate:"gte=0"`
	FloorNumber       int              `json:"floorNumber"`
	TotalFloors       int              `json:"totalFloors"       validate:"gte=0"`
	MaintenanceCharge float64          `json:"maintenanceCharge" validate:"gte=0"`
	SecurityDeposit   float64          `json:"securityDeposit"   validate:"gte=0"`
	Negotiable        bool             `json:"negotiable"`
	FurnishingType    string           `json:"furnishingType"`
	Amenities         amenitiesRequest `json:"amenities"`
	AvailableFrom     *time.Time       `json:"availableFrom"`
	Immediate         bool             `json:"immediate"`
	ShowPhone         bool             `json:"showPhone"`
	WhatsappEnabled   bool             `json:"whatsappEnabled"`
	VideoTourLink     string           `json:"videoTourLink"     validate:"omitempty,url"`
	Location          locationRequest  `json:"location"`
}

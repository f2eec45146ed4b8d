package domain

import "time"

const (
	ListingTypeRent = "rent"
	ListingTypeSale = "sale"
)

// Location is the map position of a listing.
type Location struct {
	Lat *float64 `json:"lat" bson:"lat"`
	Lng *float64 `json:"lng" bson:"lng"`
}

// Amenities lists optional building facilities.
type Amenities struct {
	Parking     bool `json:"parking" bson:"parking"`
	Lift        bool `json:"lift" bson:"lift"`
	PowerBackup bool `json:"powerBackup" bson:"power_backup"`
	WaterSupply bool `json:"waterSupply" bson:"water_supply"`
	Security    bool `json:"security" bson:"security"`
	Gym         bool `json:"gym" bson:"gym"`
}

// Listing is a property record owned by the user referenced in UserRef.
type Listing struct {
	ID                string    `json:"_id" bson:"_id,omitempty"`
	Name              string    `json:"name" bson:"name"`
	Description       string    `json:"description" bson:"description"`
	Address           string    `json:"address" bson:"address"`
	RegularPrice      float64   `json:"regularPrice" bson:"regular_price"`
	DiscountPrice     float64   `json:"discountPrice" bson:"discount_price"`
	Bathrooms         int       `json:"bathrooms" bson:"bathrooms"`
	Bedrooms          int       `json:"bedrooms" bson:"bedrooms"`
	Furnished         bool      `json:"furnished" bson:"furnished"`
	Parking           bool      `json:"parking" bson:"parking"`
	Type              string    `json:"type" bson:"type"`
	Offer             bool      `json:"offer" bson:"offer"`
	ImageURLs         []string  `json:"imageUrls" bson:"image_urls"`
	UserRef           string    `json:"userRef" bson:"user_ref"`
	PropertyType      string    `json:"propertyType" bson:"property_type"`
	City              string    `json:"city" bson:"city"`
	Locality          string    `json:"locality" bson:"locality"`
	Pincode           string    `json:"pincode" bson:"pincode"`
	Landmark          string    `json:"landmark" bson:"landmark"`
	BuiltUpArea       float64   `json:"builtUpArea" bson:"built_up_area"`
	FloorNumber       int       `json:"floorNumber" bson:"floor_number"`
	TotalFloors       int       `json:"totalFloors" bson:"total_floors"`
	MaintenanceCharge float64   `json:"maintenanceCharge" bson:"maintenance_charge"`
	SecurityDeposit   float64   `json:"securityDeposit" bson:"security_deposit"`
	Negotiable        bool      `json:"negotiable" bson:"negotiable"`
	FurnishingType    string    `json:"furnishingType" bson:"furnishing_type"`
	Amenities         Amenities `json:"amenities" bson:"amenities"`
	AvailableFrom     time.Time `json:"availableFrom" bson:"available_from"`
	Immediate         bool      `json:"immediate" bson:"immediate"`
	ShowPhone         bool      `json:"showPhone" bson:"show_phone"`
	WhatsappEnabled   bool      `json:"whatsappEnabled" bson:"whatsapp_enabled"`
	VideoTourLink     string    `json:"videoTourLink" bson:"video_tour_link"`
	Location          Location  `json:"location" bson:"location"`
	CreatedAt         time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updated_at"`
}

// OwnerID satisfies policy.Owned.
func (l *Listing) OwnerID() string { return l.UserRef }

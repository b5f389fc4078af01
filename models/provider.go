package models

// Coordinates is a latitude/longitude pair for map display.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// ProviderProfile holds the servicing-side details of an account, keyed by
// the owning user's id. Rating and ReviewCount are maintained by the review
// engine only.
type ProviderProfile struct {
	ID              string      `bson:"id" json:"id"` // matches UserProfile.ID
	FullName        string      `bson:"full_name" json:"fullName"`
	Bio             string      `bson:"bio" json:"bio"`
	HourlyRate      float64     `bson:"hourly_rate" json:"hourlyRate"`
	Verified        bool        `bson:"verified" json:"verified"`
	Categories      []string    `bson:"categories" json:"categories"`
	Rating          float64     `bson:"rating" json:"rating"`             // 0-5
	ReviewCount     int         `bson:"review_count" json:"reviewCount"`  // >= 0
	Location        string      `bson:"location" json:"location"`
	Coordinates     Coordinates `bson:"coordinates" json:"coordinates"`
	ExperienceYears int         `bson:"experience_years" json:"experienceYears"`
	ServiceRadius   int         `bson:"service_radius" json:"serviceRadius"`
	Images          []string    `bson:"images,omitempty" json:"images,omitempty"`
	JoinedAt        string      `bson:"joined_at" json:"joinedAt"` // "YYYY-MM-DD"
}

// PrimaryCategory returns the first category id, or a generic fallback when
// the provider has none recorded.
func (p ProviderProfile) PrimaryCategory() string {
	if len(p.Categories) > 0 {
		return p.Categories[0]
	}
	return "general"
}

package models

// Cities supported by the marketplace.
var Cities = []string{"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Faisalabad"}

// Categories returns the built-in service category catalog.
func Categories() []ServiceCategory {
	return []ServiceCategory{
		{ID: "plumbing", Name: "Plumbing", Icon: "Wrench", Description: "Leak repairs, pipe fitting, and installation."},
		{ID: "electrical", Name: "Electrical", Icon: "Zap", Description: "Wiring, appliance repair, and maintenance."},
		{ID: "ac_repair", Name: "AC Repair", Icon: "Thermometer", Description: "AC servicing, gas refill, and installation."},
		{ID: "cleaning", Name: "Home Cleaning", Icon: "Sparkles", Description: "Deep cleaning, sofa cleaning, and janitorial services."},
		{ID: "auto_mechanic", Name: "Auto Mechanic", Icon: "Car", Description: "Car repair, oil change, and diagnostics."},
		{ID: "home_tutor", Name: "Home Tutor", Icon: "BookOpen", Description: "K-12 tuition, O/A Levels, and test prep."},
	}
}

// CategoryByID looks a category up in the catalog.
func CategoryByID(id string) (ServiceCategory, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return ServiceCategory{}, false
}

// SeedProviders returns the built-in provider directory that the ranking
// engine merges beneath registered providers.
func SeedProviders() []ProviderProfile {
	return []ProviderProfile{
		{
			ID: "prov_1", FullName: "Ahmed Ali",
			Bio:        "Certified plumber with 10 years of experience in residential and commercial plumbing. Expert in leak detection.",
			HourlyRate: 1500, Verified: true, Categories: []string{"plumbing"},
			Rating: 4.8, ReviewCount: 42, Location: "Gulberg, Lahore",
			Coordinates: Coordinates{Lat: 31.5204, Lng: 74.3587},
			ExperienceYears: 10, ServiceRadius: 10, JoinedAt: "2022-01-15",
		},
		{
			ID: "prov_2", FullName: "Fast Fix Electrics (Bilal)",
			Bio:        "Professional electrician available for emergency repairs. Specializing in UPS installation and wiring.",
			HourlyRate: 2000, Verified: true, Categories: []string{"electrical"},
			Rating: 4.5, ReviewCount: 156, Location: "Clifton, Karachi",
			Coordinates: Coordinates{Lat: 24.8270, Lng: 67.0251},
			ExperienceYears: 5, ServiceRadius: 15, JoinedAt: "2022-03-10",
		},
		{
			ID: "prov_3", FullName: "Sana Housekeeping",
			Bio:        "Reliable and trustworthy cleaning services for your home. We bring our own supplies.",
			HourlyRate: 1000, Verified: false, Categories: []string{"cleaning"},
			Rating: 4.9, ReviewCount: 20, Location: "F-10, Islamabad",
			Coordinates: Coordinates{Lat: 33.6938, Lng: 73.0169},
			ExperienceYears: 3, ServiceRadius: 5, JoinedAt: "2023-05-20",
		},
		{
			ID: "prov_4", FullName: "Cool Breeze AC",
			Bio:        "Expert AC technicians for Split and Window ACs. Summer special rates available.",
			HourlyRate: 2500, Verified: true, Categories: []string{"ac_repair"},
			Rating: 4.6, ReviewCount: 89, Location: "DHA Phase 6, Lahore",
			Coordinates: Coordinates{Lat: 31.4725, Lng: 74.4564},
			ExperienceYears: 8, ServiceRadius: 20, JoinedAt: "2021-11-01",
		},
		{
			ID: "prov_5", FullName: "Master Mechanic Junaid",
			Bio:        "On-spot car repair and diagnostics. I come to you.",
			HourlyRate: 3000, Verified: true, Categories: []string{"auto_mechanic"},
			Rating: 4.7, ReviewCount: 33, Location: "Bahria Town, Rawalpindi",
			Coordinates: Coordinates{Lat: 33.5253, Lng: 73.1343},
			ExperienceYears: 12, ServiceRadius: 25, JoinedAt: "2020-08-15",
		},
		{
			ID: "prov_6", FullName: "Gulberg AC Expert",
			Bio:        "Specialist in Inverter ACs. Located right in Main Market Gulberg.",
			HourlyRate: 1800, Verified: true, Categories: []string{"ac_repair"},
			Rating: 4.9, ReviewCount: 12, Location: "Gulberg, Lahore",
			Coordinates: Coordinates{Lat: 31.5204, Lng: 74.3587},
			ExperienceYears: 4, ServiceRadius: 8, JoinedAt: "2023-01-01",
		},
	}
}

// SeedReviews returns the built-in reviews merged beneath stored reviews.
func SeedReviews() []Review {
	return []Review{
		{ID: "r1", ProviderID: "prov_1", ReviewerName: "Hassan R.", Rating: 5, Comment: "Excellent work, fixed the leak in minutes.", Date: "2023-10-15"},
		{ID: "r2", ProviderID: "prov_1", ReviewerName: "Fatima Z.", Rating: 4, Comment: "Good work but arrived slightly late.", Date: "2023-09-22"},
		{ID: "r3", ProviderID: "prov_2", ReviewerName: "Usman K.", Rating: 5, Comment: "Very professional, knew exactly what was wrong with the UPS.", Date: "2023-11-05"},
	}
}

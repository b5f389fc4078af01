package models

// Review is a rating plus comment attached to a provider after a completed
// booking. Append-only, never mutated.
type Review struct {
	ID           string `bson:"id" json:"id"`
	ProviderID   string `bson:"provider_id" json:"providerId"`
	ReviewerName string `bson:"reviewer_name" json:"reviewerName"`
	Rating       int    `bson:"rating" json:"rating"` // 1-5
	Comment      string `bson:"comment" json:"comment"`
	Date         string `bson:"date" json:"date"` // "YYYY-MM-DD"
}

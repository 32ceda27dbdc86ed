package domain

// Area is a named physical or logical location that items can be assigned to.
type Area struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
}

package domain

// ItemStatus represents the lifecycle state of an inventory item.
type ItemStatus string

const (
	StatusService      ItemStatus = "SERVICE"
	StatusMaintenance  ItemStatus = "MAINTENANCE"
	StatusOutOfService ItemStatus = "OUT_OF_SERVICE"
)

// IsValid reports whether s is one of the known statuses.
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusService, StatusMaintenance, StatusOutOfService:
		return true
	}
	return false
}

// Item is an inventory asset. AreaID is a weak reference: deleting the Area
// it points to leaves the id dangling, and that is the documented contract.
type Item struct {
	ID          string     `json:"id" bson:"_id"`
	Code        string     `json:"code" bson:"code"`
	Name        string     `json:"name" bson:"name"`
	Category    string     `json:"category" bson:"category"`
	Status      ItemStatus `json:"status" bson:"status"`
	Description string     `json:"description" bson:"description"`
	AreaID      string     `json:"area_id" bson:"area_id"`
	Image       string     `json:"image" bson:"image"`
	CreatedAt   string     `json:"created_at" bson:"created_at"`
	UpdatedAt   string     `json:"updated_at" bson:"updated_at"`
}

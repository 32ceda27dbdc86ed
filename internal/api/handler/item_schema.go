package handler

import "github.com/nexus-inventory/inventory-system/internal/core/domain"

type itemResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Description string `json:"description"`
	AreaID      string `json:"area_id"`
	Image       string `json:"image"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Category:    it.Category,
		Status:      string(it.Status),
		Description: it.Description,
		AreaID:      it.AreaID,
		Image:       it.Image,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItemListResponse(items []domain.Item) []itemResponse {
	out := make([]itemResponse, len(items))
	for i := range items {
		out[i] = toItemResponse(&items[i])
	}
	return out
}

type saveItemRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"     validate:"required"`
	Category    string `json:"category" validate:"required"`
	Status      string `json:"status"   validate:"omitempty,oneof=SERVICE MAINTENANCE OUT_OF_SERVICE"`
	Description string `json:"description"`
	AreaID      string `json:"area_id"  validate:"required"`
	Image       string `json:"image"`
}

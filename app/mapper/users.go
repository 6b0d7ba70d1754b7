package mapper

import (
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

func UserToResponse(item *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         item.ID,
		AuthUserID: item.AuthUserID,
		Email:      item.Email,
		FullName:   item.FullName,
		Role:       item.Role,
		CreatedAt:  formatTimeValue(item.CreatedAt),
	}
}

func UsersToResponse(items []*entity.User) []dto.UserResponse {
	result := make([]dto.UserResponse, 0, len(items))
	for _, item := range items {
		result = append(result, UserToResponse(item))
	}
	return result
}

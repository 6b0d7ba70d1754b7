package dto

type UserResponse struct {
	ID         string  `json:"id"`
	AuthUserID string  `json:"auth_user_id"`
	Email      string  `json:"email"`
	FullName   *string `json:"full_name,omitempty"`
	Role       string  `json:"role"`
	CreatedAt  string  `json:"created_at"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

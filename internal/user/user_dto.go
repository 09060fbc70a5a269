package user

type RegisterRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type UserResponse struct {
	ID           int64  `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	CanDelete    bool   `json:"can_delete"`
	CanMakeAdmin bool   `json:"can_make_admin"`
}

type UnregisteredEmployeeResponse struct {
	EmployeeID int64  `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department,omitempty"`
}

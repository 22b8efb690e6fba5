package api

import (
	"context"
	"fmt"
	"net/url"
)

// AdminUserCreate creates an account on a rider's behalf. Super-admin only.
type AdminUserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status,omitempty"`
}

// AdminUserUpdate edits an account. Super-admin only.
type AdminUserUpdate struct {
	Username string `json:"username,omitempty"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

// AdminService covers the /superadmin user-management endpoints.
type AdminService struct {
	c *Client
}

func (s *AdminService) GetAllUsers(ctx context.Context) ([]User, error) {
	var out []User
	err := s.c.get(ctx, "/superadmin/users", &out)
	return out, err
}

func (s *AdminService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := s.c.get(ctx, fmt.Sprintf("/superadmin/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) CreateUser(ctx context.Context, in AdminUserCreate) (*User, error) {
	var out User
	if err := s.c.post(ctx, "/superadmin/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, in AdminUserUpdate) (*User, error) {
	var out User
	if err := s.c.put(ctx, fmt.Sprintf("/superadmin/users/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleUserStatus flips an account between enabled and disabled.
func (s *AdminService) ToggleUserStatus(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := s.c.put(ctx, fmt.Sprintf("/superadmin/users/%d/toggle-status", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword force-sets an account's password.
func (s *AdminService) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	params := url.Values{}
	params.Set("newPassword", newPassword)
	return s.c.put(ctx, queryPath(fmt.Sprintf("/superadmin/users/%d/reset-password", id), params), nil, nil)
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/superadmin/users/%d", id), nil)
}

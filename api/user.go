package api

import (
	"context"
	"io"
)

// Role is a role grant as the backend serializes it.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// User is the full account record returned by the profile endpoints. It is
// replaced wholesale on every successful profile fetch.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Avatar    string  `json:"avatar,omitempty"`
	Roles     []Role  `json:"roles"`
	Money     float64 `json:"money"`
	Enabled   bool    `json:"enabled"`
	RealName  string  `json:"realName,omitempty"`
	Gender    string  `json:"gender,omitempty"`
	BirthDate string  `json:"birthDate,omitempty"`
	Address   string  `json:"address,omitempty"`
	Bio       string  `json:"bio,omitempty"`

	CreateTime string `json:"createTime,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}

// RoleNames returns the wire names of the user's role grants.
func (u *User) RoleNames() []string {
	if u == nil || len(u.Roles) == 0 {
		return nil
	}
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = r.Name
	}
	return names
}

// ProfileUpdate carries the fields a user may edit on their own profile.
type ProfileUpdate struct {
	RealName  string `json:"realName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Address   string `json:"address,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// PasswordUpdate changes the caller's own password.
type PasswordUpdate struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RechargeInput tops up the caller's balance.
type RechargeInput struct {
	Amount float64 `json:"amount"`
}

// UserService covers /user endpoints for the authenticated account.
type UserService struct {
	c *Client
}

// GetProfile fetches the caller's full account record.
func (s *UserService) GetProfile(ctx context.Context) (*User, error) {
	var out User
	if err := s.c.get(ctx, "/user/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile edits the caller's profile and returns the updated record.
func (s *UserService) UpdateProfile(ctx context.Context, in ProfileUpdate) (*User, error) {
	var out User
	if err := s.c.put(ctx, "/user/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePassword changes the caller's password.
func (s *UserService) UpdatePassword(ctx context.Context, in PasswordUpdate) error {
	return s.c.put(ctx, "/user/profile/password", in, nil)
}

// Recharge tops up the caller's balance.
func (s *UserService) Recharge(ctx context.Context, in RechargeInput) error {
	return s.c.post(ctx, "/user/recharge", in, nil)
}

// GetBalance fetches the caller's balance.
func (s *UserService) GetBalance(ctx context.Context) (float64, error) {
	var out float64
	err := s.c.get(ctx, "/user/balance", &out)
	return out, err
}

// UploadAvatar uploads an avatar image and returns its URL.
func (s *UserService) UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error) {
	var out struct {
		AvatarURL string `json:"avatarUrl"`
	}
	if err := s.c.upload(ctx, "/user/upload-avatar", "avatar", filename, file, &out); err != nil {
		return "", err
	}
	return out.AvatarURL, nil
}

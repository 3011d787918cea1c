package models

import (
	"strconv"

	"github.com/01moynul/taptosell-console/internal/normalize"
)

// Role ids are a closed enumeration fixed by the platform.
const (
	RoleAdmin      = 1
	RoleMerchant   = 2
	RoleModel      = 3
	RoleInfluencer = 4
	RoleCustomer   = 5
	RoleSupplier   = 6
)

var roleNames = map[int]string{
	RoleAdmin:      "admin",
	RoleMerchant:   "merchant",
	RoleModel:      "model",
	RoleInfluencer: "influencer",
	RoleCustomer:   "customer",
	RoleSupplier:   "supplier",
}

// RoleName returns the name of a role id, or "unknown".
func RoleName(id int) string {
	if name, ok := roleNames[id]; ok {
		return name
	}
	return "unknown"
}

// ValidRole reports whether id is one of the six platform roles.
func ValidRole(id int) bool {
	_, ok := roleNames[id]
	return ok
}

// RoleID looks a role up by name or numeric string.
func RoleID(name string) (int, bool) {
	for id, n := range roleNames {
		if n == name {
			return id, true
		}
	}
	if id, err := strconv.Atoi(name); err == nil && ValidRole(id) {
		return id, true
	}
	return 0, false
}

// User is the admin view of a platform account.
// Ban state is independent of the role.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	RoleID        int    `json:"roleId"`
	Role          string `json:"role"`
	IsBanned      bool   `json:"isBanned"`
	EmailVerified bool   `json:"emailVerified"`
}

// NormalizeUser builds a user from an upstream record.
// A role id outside 1..6 is kept as 0 ("unknown").
func NormalizeUser(raw map[string]any) User {
	roleID := normalize.ToInt(normalize.First(raw, "role_id", "roleId"))
	if !ValidRole(roleID) {
		roleID = 0
	}
	return User{
		ID:            normalize.ID(raw["id"]),
		Name:          normalize.ToString(normalize.First(raw, "name", "full_name", "fullName")),
		Email:         normalize.ToString(raw["email"]),
		RoleID:        roleID,
		Role:          RoleName(roleID),
		IsBanned:      normalize.ToBool(normalize.First(raw, "is_banned", "isBanned")),
		EmailVerified: normalize.ToBool(normalize.First(raw, "email_verified", "emailVerified")),
	}
}

func (u User) SearchFields() []string {
	return []string{u.Name, u.Email}
}

func (u User) FilterValue(key string) string {
	switch key {
	case "role":
		return u.Role
	case "status":
		if u.IsBanned {
			return "banned"
		}
		return "active"
	}
	return ""
}

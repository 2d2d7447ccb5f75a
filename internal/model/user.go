package model

import "time"

const (
	RoleUser       = "user"
	RoleMember     = "member"
	RoleAdmin      = "admin"
	RoleExecutive  = "executive"
	RoleUniversity = "university"
	RoleCompany    = "company"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

var validRoles = map[string]bool{
	RoleUser:       true,
	RoleMember:     true,
	RoleAdmin:      true,
	RoleExecutive:  true,
	RoleUniversity: true,
	RoleCompany:    true,
}

func ValidRole(role string) bool {
	return validRoles[role]
}

func ValidApprovalStatus(status string) bool {
	return status == ApprovalPending || status == ApprovalApproved || status == ApprovalRejected
}

// HasMemberAccess reports whether the role may see members-only content.
func HasMemberAccess(role string) bool {
	return role == RoleMember || role == RoleAdmin
}

type User struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255" json:"-"`
	Role           string    `gorm:"size:16;not null;default:user" json:"role"`
	ApprovalStatus string    `gorm:"size:16;not null;default:pending" json:"approval_status"`
	IsBanned       bool      `gorm:"not null;default:false" json:"is_banned"`
	IsGuest        bool      `gorm:"not null;default:false" json:"is_guest"`
	Bio            string    `gorm:"type:text" json:"bio"`
	LinkedinURL    string    `gorm:"size:255" json:"linkedin_url"`
	TwitterURL     string    `gorm:"size:255" json:"twitter_url"`
	WebsiteURL     string    `gorm:"size:255" json:"website_url"`
	ProfileImage   string    `gorm:"size:255" json:"profile_image"`
	CreatedAt      time.Time `json:"created_at"`
}

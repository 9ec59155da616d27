package models

// User is a product account as registered by the SaaS itself. The console
// only reads and deletes these rows; registration and profile updates happen
// in the main application.
type User struct {
	BaseModel
	FullName     string `gorm:"not null" json:"fullName"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"` // empty for social-login accounts
	IsVerified   bool   `gorm:"default:false" json:"isVerified"`
	// Social-login flags. A flagged account may have no password at all;
	// login then trusts the flag (see services.AuthService.Login).
	IsGoogleUser   bool   `gorm:"default:false" json:"isGoogleUser"`
	IsFacebookUser bool   `gorm:"default:false" json:"isFacebookUser"`
	ProfilePic     string `json:"profilePic"`
}

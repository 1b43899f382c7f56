package entity

import "time"

// AvatarCount is the size of the fixed built-in avatar set; AvatarID indexes
// into it. There is no arbitrary profile photo upload.
const AvatarCount = 6

type User struct {
	ID              string    `json:"id" firestore:"id"`
	Username        string    `json:"username,omitempty" firestore:"username,omitempty"`
	FirstName       string    `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName        string    `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	Email           string    `json:"email" firestore:"email"`
	PhoneNumber     string    `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty" firestore:"profileImageUrl,omitempty"`
	Location        string    `json:"location,omitempty" firestore:"location,omitempty"`
	Bio             string    `json:"bio,omitempty" firestore:"bio,omitempty"`
	AvatarID        int       `json:"avatar_id" firestore:"avatarId"`
	IsVerified      bool      `json:"is_verified" firestore:"isVerified"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}

// DisplayName prefers the explicit name parts over the username.
func (u *User) DisplayName() string {
	if u.FirstName != "" || u.LastName != "" {
		if u.FirstName == "" {
			return u.LastName
		}
		if u.LastName == "" {
			return u.FirstName
		}
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

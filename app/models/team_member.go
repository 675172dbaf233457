package models

type TeamMember struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

// SocialLinks holds the optional contact links of a team member.
type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// WhyChooseUsItem is one selling point of the "Why choose us" section.
type WhyChooseUsItem struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconClass   string `json:"iconClass"`
}

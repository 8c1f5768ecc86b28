package domain

// ContactMessage is a contact-form submission forwarded to the
// transactional email service.
type ContactMessage struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
	Message     string `json:"message"`
}

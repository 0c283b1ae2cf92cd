package contact

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email,max=255"`
	Message        string `json:"message" binding:"required,max=2000"`
	TurnstileToken string `json:"turnstileToken"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Message string      `json:"message"`
	Email   interface{} `json:"email,omitempty"`
}

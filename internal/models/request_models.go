package models

// Request bodies are bound with gin's JSON binding and validated with
// go-playground/validator tags. Pointer fields on update requests
// distinguish "not provided" from zero values.

// UpdateProfileRequest updates the caller's own profile. The role field is
// deliberately absent; a caller can never change its own role.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// CreateServiceRequest creates a catalog service.
type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	PricePerHr  float64  `json:"pricePerHr" binding:"required,gt=0"`
	ImageURL    string   `json:"imageUrl"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateServiceRequest updates a catalog service.
type UpdateServiceRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	PricePerHr  *float64  `json:"pricePerHr,omitempty" binding:"omitempty,gt=0"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// CreateBookingRequest places a booking for the authenticated caller.
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required"`
	Hours     int    `json:"hours" binding:"required,gt=0"`
	Address   string `json:"address" binding:"required"`
	Notes     string `json:"notes"`
}

// UpdateBookingStatusRequest moves a booking to a new status.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed in_progress completed cancelled"`
}

// AdminUpdateUserRequest updates another user's profile from the admin
// panel. Role changes go through the role-escalation guards.
type AdminUpdateUserRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Role        *Role   `json:"role,omitempty" binding:"omitempty,oneof=user admin super_admin"`
}

// UpdateAboutRequest replaces the about content block.
type UpdateAboutRequest struct {
	Heading      string `json:"heading" binding:"required"`
	Body         string `json:"body" binding:"required"`
	ImageURL     string `json:"imageUrl"`
	YearsActive  int    `json:"yearsActive" binding:"omitempty,gte=0"`
	ClientsCount int    `json:"clientsCount" binding:"omitempty,gte=0"`
}

// UpdateFooterRequest replaces the footer content block.
type UpdateFooterRequest struct {
	Tagline string `json:"tagline"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Links   []Link `json:"links"`
}

// CreateSlideRequest adds a slider entry.
type CreateSlideRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl" binding:"required"`
	Order    int    `json:"order" binding:"gte=0"`
}

// UpdateSlideRequest updates a slider entry.
type UpdateSlideRequest struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Order    *int    `json:"order,omitempty" binding:"omitempty,gte=0"`
}

// CreateTestimonialRequest adds a testimonial.
type CreateTestimonialRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	Quote     string `json:"quote" binding:"required"`
	Rating    int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	IsVisible *bool  `json:"isVisible"`
}

// UpdateTestimonialRequest updates a testimonial.
type UpdateTestimonialRequest struct {
	Name      *string `json:"name,omitempty"`
	Location  *string `json:"location,omitempty"`
	Quote     *string `json:"quote,omitempty"`
	Rating    *int    `json:"rating,omitempty" binding:"omitempty,gte=1,lte=5"`
	IsVisible *bool   `json:"isVisible,omitempty"`
}

// CreateIntentRequest asks the payment processor for a payment intent.
type CreateIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

package handler

import "github.com/PrandiF/gevp-back/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type eventRequest struct {
	Facility   string `json:"facility"   validate:"required"`
	Sport      string `json:"sport"      validate:"required"`
	Date       string `json:"date"       validate:"required,datetime=2006-01-02"`
	MemberName string `json:"memberName" validate:"required"`
	Title      string `json:"title"      validate:"required"`
	LoadedBy   string `json:"loadedBy"`
	StartTime  string `json:"startTime"  validate:"required"`
	EndTime    string `json:"endTime"    validate:"required"`
}

type eventAvailabilityRequest struct {
	Facility  string `json:"facility"  validate:"required"`
	Date      string `json:"date"      validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
}

// availabilityResponse is shared by the event and schedule availability
// endpoints. Message is only set when the slot is taken.
type availabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// eventListResponse is the pagination envelope for event listings.
type eventListResponse struct {
	TotalItems  int64           `json:"totalItems"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	PageSize    int             `json:"pageSize"`
	Data        []*domain.Event `json:"data"`
}

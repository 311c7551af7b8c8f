package handler

import "github.com/PrandiF/gevp-back/internal/core/domain"

type scheduleRequest struct {
	Weekday   string `json:"weekday"   validate:"required"`
	Facility  string `json:"facility"  validate:"required"`
	Sport     string `json:"sport"     validate:"required"`
	Category  string `json:"category"  validate:"required"`
	LoadedBy  string `json:"loadedBy"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
}

type scheduleAvailabilityRequest struct {
	Facility  string `json:"facility"  validate:"required"`
	Weekday   string `json:"weekday"   validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
}

type scheduleListResponse struct {
	TotalItems  int64              `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	PageSize    int                `json:"pageSize"`
	Data        []*domain.Schedule `json:"data"`
}

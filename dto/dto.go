package dto

import "github.com/777sanket/LinkManager-Backend/tracker"

type RegisterRequestDto struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequestDto struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditUserRequestDto struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

type CreateLinkRequestDto struct {
	OriginalLink   string `json:"originalLink"`
	Remark         string `json:"remark"`
	ExpirationTime string `json:"expirationTime"` // RFC 3339; empty means no expiration
}

type EditLinkRequestDto struct {
	OriginalLink   string  `json:"originalLink"`
	Remark         string  `json:"remark"`
	ExpirationTime *string `json:"expirationTime"` // nil keeps, "" clears, value replaces
}

// LinkDto is the client-facing view of a link; Status is derived from the
// expiration at response time, never stored.
type LinkDto struct {
	ID             uint   `json:"id"`
	OriginalLink   string `json:"originalLink"`
	ShortenedLink  string `json:"shortenedLink"`
	Remark         string `json:"remark"`
	ExpirationTime string `json:"expirationTime,omitempty"`
	DateCreated    string `json:"dateCreated"`
	Clicks         int64  `json:"clicks"`
	Status         string `json:"status"`
}

type PaginationDto struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
}

// ClickEventDto is one row of the analytics event list, with the timestamp
// already rendered in the configured reporting zone.
type ClickEventDto struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	OriginalLink string `json:"originalLink"`
	ShortLink    string `json:"shortLink"`
	IPAddress    string `json:"ipAddress"`
	UserDevice   string `json:"userDevice"`
}

type TotalClicksResponseDto struct {
	Message     string `json:"message"`
	TotalClicks int64  `json:"totalClicks"`
}

type DateWiseClicksResponseDto struct {
	Message      string               `json:"message"`
	ClicksByDate []tracker.DateClicks `json:"clicksByDate"`
}

type DeviceWiseClicksResponseDto struct {
	Message        string                 `json:"message"`
	ClicksByDevice []tracker.DeviceClicks `json:"clicksByDevice"`
}

// ClickMessage is the payload published to the click queue after a recorded
// redirect, consumed by the in-process analytics worker.
type ClickMessage struct {
	ID            string `json:"id"`
	LinkID        uint   `json:"linkId"`
	UserID        uint   `json:"userId"`
	ShortCode     string `json:"shortCode"`
	OriginalLink  string `json:"originalLink"`
	ShortenedLink string `json:"shortenedLink"`
	DeviceType    string `json:"deviceType"`
}

package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey,autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Mobile    string    `gorm:"not null" json:"mobile"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Link is a shortened URL owned by a user. ShortCode is unique and never
// changes after creation. A nil ExpirationTime means the link never expires.
type Link struct {
	ID             uint       `gorm:"primaryKey,autoIncrement" json:"id"`
	UserID         uint       `gorm:"index;not null" json:"user_id"`
	OriginalLink   string     `gorm:"not null" json:"original_link"`
	ShortCode      string     `gorm:"uniqueIndex;not null" json:"short_code"`
	ShortenedLink  string     `gorm:"not null" json:"shortened_link"`
	Remark         string     `json:"remark"`
	Clicks         int64      `gorm:"default:0" json:"clicks"`
	ExpirationTime *time.Time `json:"expiration_time"`
	DateCreated    time.Time  `gorm:"autoCreateTime" json:"date_created"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ClickEvent is one recorded visit against a link. Rows are append-only:
// created by the redirect path, bulk-deleted when the owning user or link
// goes away, never updated. UserID and the URL fields are snapshots taken
// at click time, not re-derived from the link later.
type ClickEvent struct {
	ID            uint      `gorm:"primaryKey,autoIncrement" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	LinkID        uint      `gorm:"index;not null" json:"link_id"`
	DateClicked   time.Time `gorm:"index;not null" json:"date_clicked"`
	OriginalLink  string    `gorm:"not null" json:"original_link"`
	ShortenedLink string    `gorm:"not null" json:"shortened_link"`
	IPAddress     string    `gorm:"not null" json:"ip_address"`
	UserDevice    string    `json:"user_device"`
	DeviceType    string    `gorm:"default:Desktop" json:"device_type"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

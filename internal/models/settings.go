package models

import "time"

// AccountSettings holds per-user account preferences. AccountPrivate gates
// profile and followers-only content visibility; SuggestAccount opts the
// user into follow suggestions.
type AccountSettings struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	AccountPrivate bool      `gorm:"default:false" json:"account_private"`
	SuggestAccount bool      `gorm:"default:true" json:"suggest_account"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (AccountSettings) TableName() string {
	return "account_settings"
}

// NotificationSettings stores both member and admin notification toggles.
// Which subset is exposed is decided once at the boundary via the tagged
// settings views below, never by branching inside aggregate-building code.
type NotificationSettings struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	PushNotification  bool      `gorm:"default:true" json:"push_notification"`
	EmailNotification bool      `gorm:"default:true" json:"email_notification"`
	AdminNotification bool      `gorm:"default:true" json:"admin_notification"`
	SecurityAlerts    bool      `gorm:"default:true" json:"security_alerts"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (NotificationSettings) TableName() string {
	return "notification_settings"
}

// PrivacySettings holds the user's privacy and security preferences.
type PrivacySettings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	TwoFactorEnabled    bool      `gorm:"default:false" json:"two_factor_enabled"`
	RememberMe          bool      `gorm:"default:true" json:"remember_me"`
	TrustedContactEmail string    `json:"trusted_contact_email,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (PrivacySettings) TableName() string {
	return "privacy_settings"
}

// MemberNotificationView is the notification-settings subset members see.
type MemberNotificationView struct {
	PushNotification  bool `json:"push_notification"`
	EmailNotification bool `json:"email_notification"`
}

// AdminNotificationView is the notification-settings subset admins see.
type AdminNotificationView struct {
	AdminNotification bool `json:"admin_notification"`
	SecurityAlerts    bool `json:"security_alerts"`
}

// MemberSettingsView is the settings payload returned to member accounts.
type MemberSettingsView struct {
	Account      *AccountSettings       `json:"account_settings"`
	Notification MemberNotificationView `json:"notification_settings"`
	Privacy      *PrivacySettings       `json:"privacy_settings"`
	Statistics   *Statistics            `json:"statistics"`
}

// AdminSettingsView is the settings payload returned to admin accounts.
type AdminSettingsView struct {
	Notification AdminNotificationView `json:"notification_settings"`
}

// NewMemberSettingsView builds the member-shaped settings view.
func NewMemberSettingsView(account *AccountSettings, notif *NotificationSettings, privacy *PrivacySettings, stats *Statistics) *MemberSettingsView {
	v := &MemberSettingsView{
		Account:    account,
		Privacy:    privacy,
		Statistics: stats,
	}
	if notif != nil {
		v.Notification.PushNotification = notif.PushNotification
		v.Notification.EmailNotification = notif.EmailNotification
	}
	return v
}

// NewAdminSettingsView builds the admin-shaped settings view.
func NewAdminSettingsView(notif *NotificationSettings) *AdminSettingsView {
	v := &AdminSettingsView{}
	if notif != nil {
		v.Notification.AdminNotification = notif.AdminNotification
		v.Notification.SecurityAlerts = notif.SecurityAlerts
	}
	return v
}

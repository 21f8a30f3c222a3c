package models

import "time"

// UserModel represents an account. Not exercised by the generation pipeline;
// it backs login and the subscription stub.
type UserModel struct {
	ID                    uint       `json:"id"                 gorm:"primaryKey;autoIncrement"`
	Username              string     `json:"username"           gorm:"uniqueIndex;not null"`
	Password              string     `json:"-"                  gorm:"not null"`
	Email                 *string    `json:"email"              gorm:"uniqueIndex"`
	IsPremium             bool       `json:"isPremium"          gorm:"not null;default:false"`
	SubscriptionStatus    string     `json:"subscriptionStatus" gorm:"not null;default:'free'"` // free | premium | cancelled
	RequestCount          int        `json:"requestCount"       gorm:"not null;default:0"`
	ExpiryDate            *time.Time `json:"expiryDate"`
	PaymentTransactionIDs string     `json:"-"                  gorm:"type:text"` // comma separated
	CreatedAt             time.Time  `json:"createdAt"`
}

func (UserModel) TableName() string { return "users" }

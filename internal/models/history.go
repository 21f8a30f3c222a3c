package models

import "time"

// HistoryModel is one completed generation: the content preview plus the full
// model result. Records are write-once; there is no update path.
type HistoryModel struct {
	ID        uint      `json:"id"        gorm:"primaryKey;autoIncrement"`
	Type      string    `json:"type"      gorm:"not null"` // solve | summarize | mcq
	Subject   *string   `json:"subject"`
	Content   string    `json:"content"   gorm:"type:text;not null"` // first 500 chars of extracted text
	Result    string    `json:"result"    gorm:"type:longtext;not null"`
	FileURL   *string   `json:"fileUrl"`
	FileName  *string   `json:"fileName"`
	CreatedAt time.Time `json:"createdAt"`
}

func (HistoryModel) TableName() string { return "history" }

package models

// Reading is one ingested sensor sample. Column names match the JSON field
// names the sensor client posts, so the sqlite schema stays compatible with
// rows written by earlier versions of this service.
type Reading struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Timestamp          int64   `gorm:"column:timestamp" json:"timestamp"` // UTC seconds since epoch, stamped server-side
	OfflineTemperature float64 `gorm:"column:offlineTemperature" json:"offlineTemperature"`
	OnlineTemperature  float64 `gorm:"column:onlineTemperature" json:"onlineTemperature"`
	IsOpen             bool    `gorm:"column:isOpen" json:"isOpen"`
	ConditionCode      int     `gorm:"column:conditionCode" json:"conditionCode"`
}

func (Reading) TableName() string {
	return "readings"
}

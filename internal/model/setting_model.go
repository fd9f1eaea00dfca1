package model

// Setting is a generic key→text map reserved for shell configuration.
type Setting struct {
	Key   string `gorm:"type:varchar(255);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

func (Setting) TableName() string {
	return "settings"
}

package models

// User - запись о номере телефона с последним выданным кодом подтверждения
type User struct {
	Phone string `gorm:"primaryKey;size:20" json:"phone"`
	Name  string `gorm:"size:255" json:"name"`
	Code  int    `json:"-"`
}

func (User) TableName() string {
	return "users"
}

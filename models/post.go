package models

import "time"

// Post - модель публикации с прикрепленным изображением
type Post struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"size:255" json:"first_name"`
	SecondName string    `gorm:"size:255" json:"second_name"`
	ThirdName  string    `gorm:"size:255" json:"third_name"`
	Phone      string    `gorm:"size:20;index" json:"phone"`
	ImageName  string    `gorm:"size:255" json:"image_name"`
	ImageKey   string    `gorm:"size:64" json:"image_key"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostsResponse - ответ API для списка публикаций
type PostsResponse struct {
	Posts []Post `json:"posts"`
}

package models

import (
    "time"
)

type User struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    Username  string    `gorm:"uniqueIndex;not null" json:"username"`
    Email     string    `gorm:"not null" json:"email"`
    Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`

    Recipes []Recipe `gorm:"foreignKey:UserID" json:"-"`
}

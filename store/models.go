package store

type (
	User struct {
		ID             int64  `gorm:"primaryKey" json:"id"`
		Username       string `gorm:"not null;uniqueIndex" json:"username"`
		Email          string `gorm:"not null" json:"email"`
		FirstName      string `gorm:"not null" json:"first_name"`
		LastName       string `gorm:"not null" json:"last_name"`
		Role           string `gorm:"not null" json:"role"`
		HashedPassword string `gorm:"not null" json:"-"`
		IsActive       bool   `gorm:"not null" json:"is_active"`
	}

	Todo struct {
		ID          int64  `gorm:"primaryKey" json:"id"`
		Title       string `gorm:"not null" json:"title"`
		Description string `gorm:"not null" json:"description"`
		Priority    int    `gorm:"not null" json:"priority"`
		Complete    bool   `gorm:"not null" json:"complete"`
		OwnerID     int64  `gorm:"not null;index" json:"owner_id"`
		Owner       *User  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	}
)

func (User) TableName() string {
	return "users"
}

func (Todo) TableName() string {
	return "todos"
}

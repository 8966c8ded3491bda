package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type (
	Users struct {
		db *gorm.DB
	}
)

// Create stores a new user, the ID is assigned by the database and
// written back to user.
func (u *Users) Create(ctx context.Context, user *User) error {
	err := u.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return DuplicateUser{Username: user.Username}
	} else if err != nil {
		return fmt.Errorf("unable to create user %v, cause %w", user.Username, err)
	}
	return nil
}

func (u *Users) ByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := u.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound{Kind: "user", Key: username}
	} else if err != nil {
		return nil, fmt.Errorf("unable to lookup user %v, cause %w", username, err)
	}
	return &user, nil
}

func (u *Users) ByID(ctx context.Context, id int64) (*User, error) {
	var user User
	err := u.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound{Kind: "user", Key: id}
	} else if err != nil {
		return nil, fmt.Errorf("unable to lookup user %v, cause %w", id, err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

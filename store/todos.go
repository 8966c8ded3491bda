package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	Todos struct {
		db *gorm.DB
	}

	// OwnedTodos is the only way to reach the todos table, every
	// query it builds is filtered by the owner.
	OwnedTodos struct {
		db    *gorm.DB
		owner int64
	}

	// TodoFields are the columns a client is allowed to write.
	TodoFields struct {
		Title       string
		Description string
		Priority    int
		Complete    bool
	}
)

func (t *Todos) For(ownerID int64) *OwnedTodos {
	return &OwnedTodos{db: t.db, owner: ownerID}
}

func ownedBy(owner int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", owner)
	}
}

func (o *OwnedTodos) scoped(ctx context.Context) *gorm.DB {
	return o.db.WithContext(ctx).Model(&Todo{}).Scopes(ownedBy(o.owner))
}

func (o *OwnedTodos) List(ctx context.Context) ([]Todo, error) {
	out := []Todo{}
	err := o.scoped(ctx).Order("id asc").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("unable to list todos for owner %v, cause %w", o.owner, err)
	}
	return out, nil
}

func (o *OwnedTodos) Get(ctx context.Context, id int64) (*Todo, error) {
	var todo Todo
	err := o.scoped(ctx).Where("id = ?", id).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound{Kind: "todo", Key: id}
	} else if err != nil {
		return nil, fmt.Errorf("unable to load todo %v, cause %w", id, err)
	}
	return &todo, nil
}

// Create inserts a todo owned by o, the owner is never taken from fields.
func (o *OwnedTodos) Create(ctx context.Context, fields TodoFields) (*Todo, error) {
	todo := Todo{
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		Complete:    fields.Complete,
		OwnerID:     o.owner,
	}
	err := o.db.WithContext(ctx).Create(&todo).Error
	if err != nil {
		return nil, fmt.Errorf("unable to create todo, cause %w", err)
	}
	return &todo, nil
}

// Replace overwrites every writable column of todo id.
func (o *OwnedTodos) Replace(ctx context.Context, id int64, fields TodoFields) error {
	res := o.scoped(ctx).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       fields.Title,
		"description": fields.Description,
		"priority":    fields.Priority,
		"complete":    fields.Complete,
	})
	if res.Error != nil {
		return fmt.Errorf("unable to update todo %v, cause %w", id, res.Error)
	} else if res.RowsAffected == 0 {
		return NotFound{Kind: "todo", Key: id}
	}
	return nil
}

func (o *OwnedTodos) Delete(ctx context.Context, id int64) error {
	res := o.db.WithContext(ctx).Scopes(ownedBy(o.owner)).Where("id = ?", id).Delete(&Todo{})
	if res.Error != nil {
		return fmt.Errorf("unable to delete todo %v, cause %w", id, res.Error)
	} else if res.RowsAffected == 0 {
		return NotFound{Kind: "todo", Key: id}
	}
	return nil
}

// Package store keeps users and their todos in a SQLite database
// accessed through gorm.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type (
	DB struct {
		conn *sql.DB
		orm  *gorm.DB
	}
)

// Open connects to the database at dsn and creates the tables if needed.
//
// dsn is either a path to a file or a sqlite URI (file:...), in-memory
// databases should use `file:<name>?mode=memory&cache=shared` so every
// connection in the pool sees the same data.
func Open(ctx context.Context, dsn string) (*DB, error) {
	connstr := connString(dsn)
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %w", dsn, err)
	}
	if isMemory(connstr) {
		// a shared in-memory database lives as long as one connection is open
		conn.SetMaxOpenConns(1)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to ping database %v, cause %w", dsn, err)
	}
	orm, err := gorm.Open(&sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to initialize orm for %v, cause %w", dsn, err)
	}
	db := &DB{conn: conn, orm: orm}
	err = db.init(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init database %v, cause %w", dsn, err)
	}
	return db, nil
}

func connString(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	params := "_foreign_keys=on&_busy_timeout=5000"
	if !isMemory(dsn) {
		params += "&_journal=wal"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + params
	}
	return dsn + "?" + params
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, "mode=memory") || strings.Contains(dsn, ":memory:")
}

func (d *DB) init(ctx context.Context) error {
	return d.orm.WithContext(ctx).AutoMigrate(&User{}, &Todo{})
}

func (d *DB) Users() *Users {
	return &Users{db: d.orm}
}

func (d *DB) Todos() *Todos {
	return &Todos{db: d.orm}
}

func (d *DB) Ping(ctx context.Context) error {
	return d.conn.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.conn.Close()
}

package repository

import (
	"gorm.io/gorm"
)

// TxManager scopes a unit of work to one database transaction. The callback's
// error aborts the whole transaction; nil commits it.
type TxManager interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}

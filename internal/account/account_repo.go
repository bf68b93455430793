package account

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, acc *Account) error
	FindAll(ctx context.Context) ([]Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, acc *Account) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, acc *Account) error {
	return r.db.WithContext(ctx).Create(acc).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Account, error) {
	var accs []Account
	err := r.db.WithContext(ctx).Find(&accs).Error
	return accs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var acc Account
	err := r.db.WithContext(ctx).First(&acc, "id = ?", id).Error
	return &acc, err
}

func (r *repository) Update(ctx context.Context, acc *Account) error {
	return r.db.WithContext(ctx).Save(acc).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id).Error
}

package university

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=university_repo.go -destination=mock/university_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, univ *University) error
	FindAll(ctx context.Context) ([]University, error)
	FindByID(ctx context.Context, id string) (*University, error)
	FindByCode(ctx context.Context, code string) (*University, error)
	Update(ctx context.Context, univ *University) error
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

func (r *repository) Create(ctx context.Context, univ *University) error {
	return r.db.WithContext(ctx).Create(univ).Error
}

func (r *repository) FindAll(ctx context.Context) ([]University, error) {
	var univs []University
	err := r.db.WithContext(ctx).Order("code ASC").Find(&univs).Error
	return univs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*University, error) {
	var univ University
	err := r.db.WithContext(ctx).First(&univ, "id = ?", id).Error
	return &univ, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*University, error) {
	var univ University
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&univ).Error
	return &univ, err
}

func (r *repository) Update(ctx context.Context, univ *University) error {
	return r.db.WithContext(ctx).Save(univ).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&University{}, "id = ?", id).Error
}

package education

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=education_repo.go -destination=mock/education_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, edu *Education) error
	FindAll(ctx context.Context) ([]Education, error)
	FindByID(ctx context.Context, id string) (*Education, error)
	Update(ctx context.Context, edu *Education) error
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

func (r *repository) Create(ctx context.Context, edu *Education) error {
	return r.db.WithContext(ctx).Create(edu).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Education, error) {
	var edus []Education
	err := r.db.WithContext(ctx).Find(&edus).Error
	return edus, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Education, error) {
	var edu Education
	err := r.db.WithContext(ctx).First(&edu, "id = ?", id).Error
	return &edu, err
}

func (r *repository) Update(ctx context.Context, edu *Education) error {
	return r.db.WithContext(ctx).Save(edu).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Education{}, "id = ?", id).Error
}

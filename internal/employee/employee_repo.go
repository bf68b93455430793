package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	GetLastNIK(ctx context.Context) (string, error)
	FindDetails(ctx context.Context) ([]EmployeeDetail, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Order("nik ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&empl).Error
	return &empl, err
}

// GetLastNIK returns the highest NIK handed out so far, or "" when no
// employee exists. The fixed-width suffix makes MAX safe on the string.
func (r *repository) GetLastNIK(ctx context.Context) (string, error) {
	var last string
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(nik), '') FROM employees`).
		Scan(&last).Error
	return last, err
}

func (r *repository) FindDetails(ctx context.Context) ([]EmployeeDetail, error) {
	var details []EmployeeDetail
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.nik,
			CONCAT(e.first_name, ' ', e.last_name) AS full_name,
			e.birth_date,
			e.gender,
			e.hiring_date,
			e.email,
			e.phone_number,
			ed.major,
			ed.degree,
			ed.gpa,
			u.name AS university
		FROM employees e
		JOIN educations ed ON ed.id = e.id
		JOIN universities u ON u.id = ed.university_id
		ORDER BY e.nik ASC
	`).Scan(&details).Error
	return details, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/jjyf27/redpro/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) course.Repository {
	return &courseRepository{db: db}
}

// dbCourse mirrors the course table.
type dbCourse struct {
	ID           int     `db:"id"`
	Title        string  `db:"title"`
	Author       string  `db:"author"`
	Price        float64 `db:"price"`
	ListPrice    float64 `db:"list_price"`
	ImageRef     string  `db:"image_ref"`
	Category     string  `db:"category"`
	Duration     string  `db:"duration"`
	StudentCount string  `db:"student_count"`
}

func (c dbCourse) toCore() course.Course {
	return course.Course{
		ID:           c.ID,
		Title:        c.Title,
		Author:       c.Author,
		Price:        c.Price,
		ListPrice:    c.ListPrice,
		ImageRef:     c.ImageRef,
		Category:     c.Category,
		Duration:     c.Duration,
		StudentCount: c.StudentCount,
	}
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	query := `
	INSERT INTO course (title, author, price, list_price, image_ref, category, duration, student_count)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`
	err := repo.db.QueryRow(
		query, c.Title, c.Author, c.Price, c.ListPrice, c.ImageRef, c.Category, c.Duration, c.StudentCount,
	).Scan(&c.ID)
	if err != nil {
		return course.Course{}, err
	}
	return c, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	var rows []dbCourse
	if err := repo.db.Select(&rows, `SELECT * FROM course ORDER BY id`); err != nil {
		return nil, err
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toCore())
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	var row dbCourse
	if err := repo.db.Get(&row, `SELECT * FROM course WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	return row.toCore(), nil
}

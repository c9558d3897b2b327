package dummydb

import (
	"sort"

	"github.com/jjyf27/redpro/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

// NewSampleCourseRepository returns a repository preloaded with the
// built-in catalog, the fallback storefront when the database is down.
func NewSampleCourseRepository(db *DB) course.Repository {
	repo := &courseRepository{db: db.course}
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, c := range course.SampleCatalog() {
		crs := c
		repo.db.table[crs.ID] = &crs
		if crs.ID > repo.db.pkCount {
			repo.db.pkCount = crs.ID
		}
	}
	return repo
}

func (repo *courseRepository) query() []course.Course {
	courses := make([]course.Course, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		courses = append(courses, *c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	c.ID = repo.db.pkCount
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return course.Course{}, course.ErrNotFound
}

package course

import (
	"errors"
	"strings"

	"github.com/jjyf27/redpro/core"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(c Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
	}

	Service struct {
		repo     Repository
		fallback Repository
		log      core.Logger
	}
)

// NewService wires the primary repository and an optional fallback used
// when the primary errors or is empty, mirroring the storefront's
// degraded mode when the relational store is unreachable.
func NewService(repo Repository, fallback Repository, logger core.Logger) *Service {
	return &Service{repo: repo, fallback: fallback, log: logger}
}

// Query returns catalog records in stable order; limit <= 0 means all.
// An empty catalog is a valid result, not an error.
func (svc *Service) Query(limit int) ([]Course, error) {
	courses, err := svc.repo.QueryAllCourses()
	if err != nil || len(courses) == 0 {
		if svc.fallback == nil {
			return courses, err
		}
		if err != nil && svc.log != nil {
			svc.log.Warn("course catalog unavailable, serving fallback", err)
		}
		if courses, err = svc.fallback.QueryAllCourses(); err != nil {
			return nil, err
		}
	}
	if limit > 0 && limit < len(courses) {
		courses = courses[:limit]
	}
	return courses, nil
}

func (svc *Service) GetByID(id int) (Course, error) {
	c, err := svc.repo.GetCourseByID(id)
	if err != nil {
		if svc.fallback != nil {
			return svc.fallback.GetCourseByID(id)
		}
		return Course{}, err
	}
	return c, nil
}

// Search does a case-insensitive match on course titles, the contract
// behind the search widget.
func (svc *Service) Search(query string, limit int) ([]Course, error) {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return nil, nil
	}
	courses, err := svc.Query(0)
	if err != nil {
		return nil, err
	}
	var found []Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), query) {
			found = append(found, c)
			if limit > 0 && len(found) == limit {
				break
			}
		}
	}
	return found, nil
}

func (svc *Service) Create(c Course) (Course, error) {
	return svc.repo.CreateCourse(c)
}

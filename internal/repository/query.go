package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Operation timeouts
const (
	defaultTimeout = 5 * time.Second
	listTimeout    = 10 * time.Second
)

// ListQuery holds the back-office list parameters: free-text search, declared
// filters and pagination.
type ListQuery struct {
	Search  string
	Filters map[string]string
	Offset  int
	Limit   int
}

// Page holds one page of results and the total number of matching rows
type Page[T any] struct {
	Items      []T
	TotalCount int64
}

// Filter binds one filter key to the predicate it applies. Apply receives the
// key's value and the full filter set for predicates spanning two keys.
type Filter struct {
	Key   string
	Apply func(db *gorm.DB, value string, all map[string]string) (*gorm.DB, error)
}

// listSpec declares how a panel's list is joined, searched, filtered and ordered
type listSpec struct {
	joins   []string
	search  []string
	filters []Filter
	order   string
}

// FilterKeys returns the declared filter keys in declaration order
func (s listSpec) FilterKeys() []string {
	keys := make([]string, 0, len(s.filters))
	for _, f := range s.filters {
		keys = append(keys, f.Key)
	}
	return keys
}

// scope applies joins, search and filters; ordering and paging are left to the caller
func (s listSpec) scope(db *gorm.DB, q ListQuery) (*gorm.DB, error) {
	for _, join := range s.joins {
		db = db.Joins(join)
	}

	if term := strings.TrimSpace(q.Search); term != "" && len(s.search) > 0 {
		like := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(s.search))
		args := make([]interface{}, 0, len(s.search))
		for _, column := range s.search {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", column))
			args = append(args, like)
		}
		db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	// Unknown keys are ignored.
	for _, f := range s.filters {
		value, ok := q.Filters[f.Key]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		var err error
		if db, err = f.Apply(db, strings.TrimSpace(value), q.Filters); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func paginate(db *gorm.DB, q ListQuery) *gorm.DB {
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db
}

// Filter constructors

func equalsFilter(key, column string) Filter {
	return Filter{Key: key, Apply: func(db *gorm.DB, value string, _ map[string]string) (*gorm.DB, error) {
		return db.Where(column+" = ?", value), nil
	}}
}

func idFilter(key, column string) Filter {
	return Filter{Key: key, Apply: func(db *gorm.DB, value string, _ map[string]string) (*gorm.DB, error) {
		id, err := ParseID(value)
		if err != nil {
			return nil, invalidFilter(key, value)
		}
		return db.Where(column+" = ?", id), nil
	}}
}

// dateFilter matches a single calendar day (YYYY-MM-DD)
func dateFilter(key, column string) Filter {
	return Filter{Key: key, Apply: func(db *gorm.DB, value string, _ map[string]string) (*gorm.DB, error) {
		day, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return nil, invalidFilter(key, value)
		}
		return withinRange(db, column, day, day.AddDate(0, 0, 1)), nil
	}}
}

// yearFilter matches a calendar year, narrowed to one month when monthKey is also set
func yearFilter(key, monthKey, column string) Filter {
	return Filter{Key: key, Apply: func(db *gorm.DB, value string, all map[string]string) (*gorm.DB, error) {
		year, err := strconv.Atoi(value)
		if err != nil || year < 1 || year > 9999 {
			return nil, invalidFilter(key, value)
		}
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(1, 0, 0)

		if raw := strings.TrimSpace(all[monthKey]); raw != "" {
			month, err := strconv.Atoi(raw)
			if err != nil || month < 1 || month > 12 {
				return nil, invalidFilter(monthKey, raw)
			}
			from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			to = from.AddDate(0, 1, 0)
		}
		return withinRange(db, column, from, to), nil
	}}
}

// monthFilter only validates; the month is applied by the year filter
func monthFilter(key, yearKey string) Filter {
	return Filter{Key: key, Apply: func(db *gorm.DB, value string, all map[string]string) (*gorm.DB, error) {
		if strings.TrimSpace(all[yearKey]) == "" {
			return nil, fmt.Errorf("%w: %s requires %s", ErrInvalidFilter, key, yearKey)
		}
		return db, nil
	}}
}

func withinRange(db *gorm.DB, column string, from, to time.Time) *gorm.DB {
	return db.Where(column+" >= ? AND "+column+" < ?", from, to)
}

func invalidFilter(key, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidFilter, key, value)
}

// ParseID parses a positive numeric primary key
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return uint(id), nil
}

// Package marketplace implements the CRUD surface of the job marketplace:
// categories, job postings, comments, and hire transactions. Every route is
// mounted behind the auth guard; mutations on categories and users require
// the admin role.
package marketplace

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// JobCategory is a top-level grouping of job detail categories.
type JobCategory struct {
	bun.BaseModel `bun:"table:job_categories,alias:jc"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull,unique" json:"name,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`

	DetailCategories []*JobDetailCategory `bun:"rel:has-many,join:id=job_category_id" json:"job_detail_category,omitempty"`
}

// JobDetailCategory is a sub-category with an image, belonging to a
// JobCategory.
type JobDetailCategory struct {
	bun.BaseModel `bun:"table:job_detail_categories,alias:jdc"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull,unique" json:"name,omitempty"`
	Image         string     `bun:"image" json:"image,omitempty"`
	JobCategoryID uuid.UUID  `bun:"job_category_id,notnull,type:uuid" json:"job_category_id,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Job is a posting created by a user within a detail category. Name is
// unique within its detail category, not globally.
type Job struct {
	bun.BaseModel       `bun:"table:jobs,alias:job"`
	ID                  uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name                string     `bun:"name,notnull" json:"name,omitempty"`
	Rate                int        `bun:"rate" json:"rate"`
	Price               float64    `bun:"price" json:"price"`
	Description         string     `bun:"description" json:"description,omitempty"`
	ShortDescription    string     `bun:"short_description" json:"short_description,omitempty"`
	Stars               int        `bun:"stars" json:"stars"`
	Image               string     `bun:"image" json:"image,omitempty"`
	JobDetailCategoryID uuid.UUID  `bun:"job_detail_category_id,notnull,type:uuid" json:"job_detail_category_id,omitempty"`
	CreatorID           uuid.UUID  `bun:"creator_id,notnull,type:uuid" json:"creator_id,omitempty"`
	CreatedAt           *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt           *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Comment is a user's review on a job.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	JobID         uuid.UUID  `bun:"job_id,notnull,type:uuid" json:"job_id,omitempty"`
	CommentDate   *time.Time `bun:"comment_date,nullzero" json:"comment_date,omitempty"`
	Description   string     `bun:"description" json:"description,omitempty"`
	StarsComment  int        `bun:"stars_comment" json:"stars_comment"`
}

// HireJob records one user hiring one job.
type HireJob struct {
	bun.BaseModel `bun:"table:hire_jobs,alias:hj"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	JobID         uuid.UUID  `bun:"job_id,notnull,type:uuid" json:"job_id,omitempty"`
	HireDate      *time.Time `bun:"hire_date,nullzero" json:"hire_date,omitempty"`
	Completed     bool       `bun:"completed" json:"completed"`

	Job *Job `bun:"rel:belongs-to,join:job_id=id" json:"job,omitempty"`
}

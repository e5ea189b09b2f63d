package marketplace

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-errors"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Store implements the marketplace repositories using Bun.
type Store struct {
	db *bun.DB
}

// NewStore creates a new marketplace store.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

func wrapStoreErr(err error, msg string) error {
	return errors.Wrap(err, errors.CategoryInternal, msg)
}

// UserExists reports whether a user row exists. Marketplace creates check
// foreign ids up front so dangling references surface as not-found.
func (s *Store) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*jobhub.User)(nil)).
		Where("?TableAlias.id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, wrapStoreErr(err, "failed to check user")
	}
	return exists, nil
}

// ---- Job categories

func (s *Store) ListJobCategories(ctx context.Context) ([]*JobCategory, error) {
	records := []*JobCategory{}
	err := s.db.NewSelect().
		Model(&records).
		Relation("DetailCategories").
		Order("jc.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list job categories")
	}
	return records, nil
}

func (s *Store) PageJobCategories(ctx context.Context, keyword string, limit, offset int) ([]*JobCategory, error) {
	records := []*JobCategory{}
	q := s.db.NewSelect().
		Model(&records).
		Relation("DetailCategories")
	if keyword != "" {
		q = q.Where("jc.name LIKE ?", "%"+keyword+"%")
	}
	err := q.
		Order("jc.created_at ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to page job categories")
	}
	return records, nil
}

func (s *Store) GetJobCategory(ctx context.Context, id uuid.UUID) (*JobCategory, error) {
	record := &JobCategory{}
	err := s.db.NewSelect().
		Model(record).
		Relation("DetailCategories").
		Where("jc.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get job category")
	}
	return record, nil
}

func (s *Store) FindJobCategoryByName(ctx context.Context, name string) (*JobCategory, error) {
	record := &JobCategory{}
	err := s.db.NewSelect().
		Model(record).
		Where("jc.name = ?", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to find job category by name")
	}
	return record, nil
}

func (s *Store) CreateJobCategory(ctx context.Context, record *JobCategory) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to create job category")
	}
	return nil
}

func (s *Store) UpdateJobCategory(ctx context.Context, record *JobCategory) error {
	now := time.Now()
	record.UpdatedAt = &now
	if _, err := s.db.NewUpdate().
		Model(record).
		Column("name", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to update job category")
	}
	return nil
}

func (s *Store) DeleteJobCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.NewDelete().
		Model((*JobCategory)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete job category")
	}
	return nil
}

// ---- Job detail categories

func (s *Store) ListJobDetailCategories(ctx context.Context) ([]*JobDetailCategory, error) {
	records := []*JobDetailCategory{}
	err := s.db.NewSelect().
		Model(&records).
		Order("jdc.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list job detail categories")
	}
	return records, nil
}

func (s *Store) PageJobDetailCategories(ctx context.Context, keyword string, limit, offset int) ([]*JobDetailCategory, error) {
	records := []*JobDetailCategory{}
	q := s.db.NewSelect().Model(&records)
	if keyword != "" {
		q = q.Where("jdc.name LIKE ?", "%"+keyword+"%")
	}
	err := q.
		Order("jdc.created_at ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to page job detail categories")
	}
	return records, nil
}

func (s *Store) GetJobDetailCategory(ctx context.Context, id uuid.UUID) (*JobDetailCategory, error) {
	record := &JobDetailCategory{}
	err := s.db.NewSelect().
		Model(record).
		Where("jdc.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get job detail category")
	}
	return record, nil
}

func (s *Store) FindJobDetailCategoryByName(ctx context.Context, name string) (*JobDetailCategory, error) {
	record := &JobDetailCategory{}
	err := s.db.NewSelect().
		Model(record).
		Where("jdc.name = ?", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to find job detail category by name")
	}
	return record, nil
}

func (s *Store) CreateJobDetailCategory(ctx context.Context, record *JobDetailCategory) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to create job detail category")
	}
	return nil
}

func (s *Store) UpdateJobDetailCategory(ctx context.Context, record *JobDetailCategory, columns ...string) error {
	now := time.Now()
	record.UpdatedAt = &now
	if len(columns) == 0 {
		columns = []string{"name", "job_category_id", "updated_at"}
	} else {
		columns = append(columns, "updated_at")
	}
	if _, err := s.db.NewUpdate().
		Model(record).
		Column(columns...).
		WherePK().
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to update job detail category")
	}
	return nil
}

func (s *Store) DeleteJobDetailCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.NewDelete().
		Model((*JobDetailCategory)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete job detail category")
	}
	return nil
}

// ---- Jobs

func (s *Store) ListJobs(ctx context.Context) ([]*Job, error) {
	records := []*Job{}
	err := s.db.NewSelect().
		Model(&records).
		Order("job.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list jobs")
	}
	return records, nil
}

func (s *Store) SearchJobs(ctx context.Context, name string) ([]*Job, error) {
	records := []*Job{}
	q := s.db.NewSelect().Model(&records)
	if name != "" {
		q = q.Where("job.name LIKE ?", "%"+name+"%")
	}
	err := q.Order("job.created_at DESC").Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to search jobs")
	}
	return records, nil
}

func (s *Store) PageJobs(ctx context.Context, keyword string, limit, offset int) ([]*Job, error) {
	records := []*Job{}
	q := s.db.NewSelect().Model(&records)
	if keyword != "" {
		q = q.Where("job.name LIKE ?", "%"+keyword+"%")
	}
	err := q.
		Order("job.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to page jobs")
	}
	return records, nil
}

func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	record := &Job{}
	err := s.db.NewSelect().
		Model(record).
		Where("job.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get job")
	}
	return record, nil
}

// FindJobByName scopes the name check to one detail category; the original
// data model allows the same job name under different categories.
func (s *Store) FindJobByName(ctx context.Context, name string, detailCategoryID uuid.UUID) (*Job, error) {
	record := &Job{}
	err := s.db.NewSelect().
		Model(record).
		Where("job.name = ?", name).
		Where("job.job_detail_category_id = ?", detailCategoryID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to find job by name")
	}
	return record, nil
}

func (s *Store) CreateJob(ctx context.Context, record *Job) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to create job")
	}
	return nil
}

func (s *Store) UpdateJob(ctx context.Context, record *Job, columns ...string) error {
	now := time.Now()
	record.UpdatedAt = &now
	if len(columns) == 0 {
		columns = []string{
			"name", "rate", "price", "description", "short_description",
			"stars", "job_detail_category_id", "creator_id", "updated_at",
		}
	} else {
		columns = append(columns, "updated_at")
	}
	if _, err := s.db.NewUpdate().
		Model(record).
		Column(columns...).
		WherePK().
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to update job")
	}
	return nil
}

func (s *Store) SetJobImage(ctx context.Context, id uuid.UUID, image string) (*Job, error) {
	record := &Job{ID: id, Image: image}
	if _, err := s.db.NewUpdate().
		Model(record).
		Column("image").
		WherePK().
		Exec(ctx); err != nil {
		return nil, wrapStoreErr(err, "failed to set job image")
	}
	return s.GetJob(ctx, id)
}

func (s *Store) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.NewDelete().
		Model((*Job)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete job")
	}
	return nil
}

// ---- Comments

func (s *Store) ListComments(ctx context.Context) ([]*Comment, error) {
	records := []*Comment{}
	err := s.db.NewSelect().
		Model(&records).
		Order("cmt.comment_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list comments")
	}
	return records, nil
}

func (s *Store) GetComment(ctx context.Context, id uuid.UUID) (*Comment, error) {
	record := &Comment{}
	err := s.db.NewSelect().
		Model(record).
		Where("cmt.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get comment")
	}
	return record, nil
}

func (s *Store) ListCommentsByJob(ctx context.Context, jobID uuid.UUID) ([]*Comment, error) {
	records := []*Comment{}
	err := s.db.NewSelect().
		Model(&records).
		Where("cmt.job_id = ?", jobID).
		Order("cmt.comment_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list comments by job")
	}
	return records, nil
}

func (s *Store) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]*Comment, error) {
	records := []*Comment{}
	err := s.db.NewSelect().
		Model(&records).
		Where("cmt.user_id = ?", userID).
		Order("cmt.comment_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list comments by user")
	}
	return records, nil
}

func (s *Store) CreateComment(ctx context.Context, record *Comment) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CommentDate == nil {
		now := time.Now()
		record.CommentDate = &now
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to create comment")
	}
	return nil
}

func (s *Store) UpdateComment(ctx context.Context, record *Comment) error {
	now := time.Now()
	record.CommentDate = &now
	if _, err := s.db.NewUpdate().
		Model(record).
		Column("description", "stars_comment", "comment_date").
		WherePK().
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to update comment")
	}
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.NewDelete().
		Model((*Comment)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete comment")
	}
	return nil
}

// ---- Hire jobs

func (s *Store) ListHireJobs(ctx context.Context) ([]*HireJob, error) {
	records := []*HireJob{}
	err := s.db.NewSelect().
		Model(&records).
		Order("hj.hire_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list hire jobs")
	}
	return records, nil
}

// PageHireJobs filters on the hired job's name, carrying the joined job in
// each row like the original listing does.
func (s *Store) PageHireJobs(ctx context.Context, keyword string, limit, offset int) ([]*HireJob, error) {
	records := []*HireJob{}
	q := s.db.NewSelect().
		Model(&records).
		Relation("Job")
	if keyword != "" {
		q = q.Where("job.name LIKE ?", "%"+keyword+"%")
	}
	err := q.
		Order("hj.hire_date DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to page hire jobs")
	}
	return records, nil
}

func (s *Store) GetHireJob(ctx context.Context, id uuid.UUID) (*HireJob, error) {
	record := &HireJob{}
	err := s.db.NewSelect().
		Model(record).
		Where("hj.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to get hire job")
	}
	return record, nil
}

func (s *Store) CreateHireJob(ctx context.Context, record *HireJob) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.HireDate == nil {
		now := time.Now()
		record.HireDate = &now
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to create hire job")
	}
	return nil
}

func (s *Store) UpdateHireJob(ctx context.Context, record *HireJob) error {
	if _, err := s.db.NewUpdate().
		Model(record).
		Column("user_id", "job_id", "completed").
		WherePK().
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to update hire job")
	}
	return nil
}

func (s *Store) DeleteHireJob(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.NewDelete().
		Model((*HireJob)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete hire job")
	}
	return nil
}

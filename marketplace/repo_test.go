package marketplace_test

import (
	"context"
	"testing"

	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-jobhub/database"
	"github.com/goliatone/go-jobhub/marketplace"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func setupStore(t *testing.T) (*marketplace.Store, *bun.DB) {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Bootstrap(context.Background(), db))

	return marketplace.NewStore(db), db
}

func seedCategory(t *testing.T, store *marketplace.Store, name string) *marketplace.JobCategory {
	t.Helper()

	record := &marketplace.JobCategory{Name: name}
	require.NoError(t, store.CreateJobCategory(context.Background(), record))
	return record
}

func seedDetailCategory(t *testing.T, store *marketplace.Store, name string, categoryID uuid.UUID) *marketplace.JobDetailCategory {
	t.Helper()

	record := &marketplace.JobDetailCategory{Name: name, JobCategoryID: categoryID}
	require.NoError(t, store.CreateJobDetailCategory(context.Background(), record))
	return record
}

func seedJob(t *testing.T, store *marketplace.Store, name string, detailID, creatorID uuid.UUID) *marketplace.Job {
	t.Helper()

	record := &marketplace.Job{
		Name:                name,
		Price:               50,
		JobDetailCategoryID: detailID,
		CreatorID:           creatorID,
	}
	require.NoError(t, store.CreateJob(context.Background(), record))
	return record
}

func TestStoreJobCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns an id", func(t *testing.T) {
		store, _ := setupStore(t)

		record := seedCategory(t, store, "IT & Software")
		assert.NotEqual(t, uuid.Nil, record.ID)
	})

	t.Run("get and find by name", func(t *testing.T) {
		store, _ := setupStore(t)
		seeded := seedCategory(t, store, "IT & Software")

		found, err := store.GetJobCategory(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "IT & Software", found.Name)

		byName, err := store.FindJobCategoryByName(ctx, "IT & Software")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, seeded.ID, byName.ID)

		missing, err := store.GetJobCategory(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("pagination filters by keyword", func(t *testing.T) {
		store, _ := setupStore(t)
		seedCategory(t, store, "IT & Software")
		seedCategory(t, store, "Design")
		seedCategory(t, store, "Digital Marketing")

		records, err := store.PageJobCategories(ctx, "Di", 10, 0)
		require.NoError(t, err)
		assert.Len(t, records, 2)

		records, err = store.PageJobCategories(ctx, "", 2, 0)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("update and delete", func(t *testing.T) {
		store, _ := setupStore(t)
		seeded := seedCategory(t, store, "IT & Software")

		seeded.Name = "Technology"
		require.NoError(t, store.UpdateJobCategory(ctx, seeded))

		found, err := store.GetJobCategory(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Technology", found.Name)

		require.NoError(t, store.DeleteJobCategory(ctx, seeded.ID))

		found, err = store.GetJobCategory(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestStoreJobDetailCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("create and fetch", func(t *testing.T) {
		store, _ := setupStore(t)
		category := seedCategory(t, store, "IT & Software")
		seeded := seedDetailCategory(t, store, "Web Development", category.ID)

		found, err := store.GetJobDetailCategory(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, category.ID, found.JobCategoryID)
	})

	t.Run("update selected columns keeps the image", func(t *testing.T) {
		store, _ := setupStore(t)
		category := seedCategory(t, store, "IT & Software")
		seeded := seedDetailCategory(t, store, "Web Development", category.ID)

		seeded.Image = "web.png"
		require.NoError(t, store.UpdateJobDetailCategory(ctx, seeded, "image"))

		seeded.Name = "Backend Development"
		require.NoError(t, store.UpdateJobDetailCategory(ctx, seeded, "name", "job_category_id"))

		found, err := store.GetJobDetailCategory(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backend Development", found.Name)
		assert.Equal(t, "web.png", found.Image)
	})
}

func TestStoreJobs(t *testing.T) {
	ctx := context.Background()

	newJobFixture := func(t *testing.T) (*marketplace.Store, *bun.DB, *marketplace.JobDetailCategory, uuid.UUID) {
		store, db := setupStore(t)
		category := seedCategory(t, store, "IT & Software")
		detail := seedDetailCategory(t, store, "Web Development", category.ID)
		creator := uuid.New()
		return store, db, detail, creator
	}

	t.Run("find by name is scoped to the detail category", func(t *testing.T) {
		store, _, detail, creator := newJobFixture(t)
		seedJob(t, store, "Build a landing page", detail.ID, creator)

		category, err := store.FindJobCategoryByName(ctx, "IT & Software")
		require.NoError(t, err)
		otherDetail := seedDetailCategory(t, store, "Mobile Development", category.ID)

		found, err := store.FindJobByName(ctx, "Build a landing page", detail.ID)
		require.NoError(t, err)
		assert.NotNil(t, found)

		// same name under a different detail category is fine
		found, err = store.FindJobByName(ctx, "Build a landing page", otherDetail.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("search matches name substrings", func(t *testing.T) {
		store, _, detail, creator := newJobFixture(t)
		seedJob(t, store, "Build a landing page", detail.ID, creator)
		seedJob(t, store, "Design a logo", detail.ID, creator)

		records, err := store.SearchJobs(ctx, "landing")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Build a landing page", records[0].Name)
	})

	t.Run("set job image", func(t *testing.T) {
		store, _, detail, creator := newJobFixture(t)
		seeded := seedJob(t, store, "Build a landing page", detail.ID, creator)

		updated, err := store.SetJobImage(ctx, seeded.ID, "shot.png")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "shot.png", updated.Image)
	})

	t.Run("user exists consults the users table", func(t *testing.T) {
		store, db := setupStore(t)
		users := jobhub.NewUsersRepository(db)

		record, err := users.Register(ctx, &jobhub.User{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		})
		require.NoError(t, err)

		exists, err := store.UserExists(ctx, record.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.UserExists(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestStoreComments(t *testing.T) {
	ctx := context.Background()

	store, _ := setupStore(t)
	category := seedCategory(t, store, "IT & Software")
	detail := seedDetailCategory(t, store, "Web Development", category.ID)
	creator := uuid.New()
	job := seedJob(t, store, "Build a landing page", detail.ID, creator)
	otherJob := seedJob(t, store, "Design a logo", detail.ID, creator)

	commenter := uuid.New()

	record := &marketplace.Comment{
		UserID:       commenter,
		JobID:        job.ID,
		Description:  "Great work",
		StarsComment: 5,
	}
	require.NoError(t, store.CreateComment(ctx, record))
	assert.NotNil(t, record.CommentDate)

	require.NoError(t, store.CreateComment(ctx, &marketplace.Comment{
		UserID:       uuid.New(),
		JobID:        otherJob.ID,
		Description:  "Solid",
		StarsComment: 4,
	}))

	byJob, err := store.ListCommentsByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, byJob, 1)
	assert.Equal(t, "Great work", byJob[0].Description)

	byUser, err := store.ListCommentsByUser(ctx, commenter)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	record.Description = "Great work, updated"
	record.StarsComment = 4
	require.NoError(t, store.UpdateComment(ctx, record))

	found, err := store.GetComment(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Great work, updated", found.Description)
	assert.Equal(t, 4, found.StarsComment)

	require.NoError(t, store.DeleteComment(ctx, record.ID))
	found, err = store.GetComment(ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStoreHireJobs(t *testing.T) {
	ctx := context.Background()

	store, _ := setupStore(t)
	category := seedCategory(t, store, "IT & Software")
	detail := seedDetailCategory(t, store, "Web Development", category.ID)
	job := seedJob(t, store, "Build a landing page", detail.ID, uuid.New())
	otherJob := seedJob(t, store, "Design a logo", detail.ID, uuid.New())

	hirer := uuid.New()

	record := &marketplace.HireJob{UserID: hirer, JobID: job.ID}
	require.NoError(t, store.CreateHireJob(ctx, record))
	assert.NotNil(t, record.HireDate)

	require.NoError(t, store.CreateHireJob(ctx, &marketplace.HireJob{
		UserID: uuid.New(),
		JobID:  otherJob.ID,
	}))

	t.Run("pagination filters on the joined job name", func(t *testing.T) {
		records, err := store.PageHireJobs(ctx, "landing", 10, 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.NotNil(t, records[0].Job)
		assert.Equal(t, "Build a landing page", records[0].Job.Name)
	})

	t.Run("update completion", func(t *testing.T) {
		record.Completed = true
		require.NoError(t, store.UpdateHireJob(ctx, record))

		found, err := store.GetHireJob(ctx, record.ID)
		require.NoError(t, err)
		assert.True(t, found.Completed)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteHireJob(ctx, record.ID))

		found, err := store.GetHireJob(ctx, record.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
)

// JobCategoryController serves the job category CRUD.
type JobCategoryController struct {
	Logger jobhub.Logger
	Store  *Store
}

// JobCategoryRequest is the create/update payload
type JobCategoryRequest struct {
	Name string `form:"name" json:"name"`
}

// Validate will run validation rules
func (r JobCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

func (c *JobCategoryController) List(ctx router.Context) error {
	records, err := c.Store.ListJobCategories(ctx.Context())
	if err != nil {
		c.Logger.Error("List job categories error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get job category list successfully", records)
}

func (c *JobCategoryController) Page(ctx router.Context) error {
	limit, offset, keyword := pageParams(ctx)

	records, err := c.Store.PageJobCategories(ctx.Context(), keyword, limit, offset)
	if err != nil {
		c.Logger.Error("Page job categories error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get job category list successfully", records)
}

func (c *JobCategoryController) Get(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJobCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Get job category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job category ID not found")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get job category successfully", record)
}

func (c *JobCategoryController) Create(ctx router.Context) error {
	payload := new(JobCategoryRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	existing, err := c.Store.FindJobCategoryByName(ctx.Context(), payload.Name)
	if err != nil {
		c.Logger.Error("Create job category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Job category name already existed")
	}

	if err := c.Store.CreateJobCategory(ctx.Context(), &JobCategory{Name: payload.Name}); err != nil {
		c.Logger.Error("Create job category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusCreated, "Create job category successfully")
}

func (c *JobCategoryController) Update(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	payload := new(JobCategoryRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	record, err := c.Store.GetJobCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Update job category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job category ID not found")
	}

	conflicting, err := c.Store.FindJobCategoryByName(ctx.Context(), payload.Name)
	if err != nil {
		c.Logger.Error("Update job category name check error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if conflicting != nil && conflicting.ID != id {
		return jobhub.Respond(ctx, router.StatusBadRequest, "New job category name already existed")
	}

	record.Name = payload.Name
	if err := c.Store.UpdateJobCategory(ctx.Context(), record); err != nil {
		c.Logger.Error("Update job category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Update job category successfully", record)
}

func (c *JobCategoryController) Delete(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJobCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Delete job category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job category ID not found")
	}

	if err := c.Store.DeleteJobCategory(ctx.Context(), id); err != nil {
		c.Logger.Error("Delete job category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusOK, "Delete job category successfully")
}

package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// JobDetailCategoryController serves detail-category CRUD plus its image
// upload.
type JobDetailCategoryController struct {
	Logger jobhub.Logger
	Store  *Store
	Images *ImageStore
}

// JobDetailCategoryRequest is the create/update payload
type JobDetailCategoryRequest struct {
	Name          string    `form:"name" json:"name"`
	JobCategoryID uuid.UUID `form:"job_category_id" json:"job_category_id"`
}

// Validate will run validation rules
func (r JobDetailCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.JobCategoryID, validation.Required, validation.By(requiredUUID)),
	)
}

func requiredUUID(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

func (c *JobDetailCategoryController) List(ctx router.Context) error {
	records, err := c.Store.ListJobDetailCategories(ctx.Context())
	if err != nil {
		c.Logger.Error("List job detail categories error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get job detail category list successfully", records)
}

func (c *JobDetailCategoryController) Page(ctx router.Context) error {
	limit, offset, keyword := pageParams(ctx)

	records, err := c.Store.PageJobDetailCategories(ctx.Context(), keyword, limit, offset)
	if err != nil {
		c.Logger.Error("Page job detail categories error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get job detail category list successfully", records)
}

func (c *JobDetailCategoryController) Get(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJobDetailCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Get job detail category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job detail category ID not found")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get job detail category successfully", record)
}

func (c *JobDetailCategoryController) Create(ctx router.Context) error {
	payload := new(JobDetailCategoryRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	parent, err := c.Store.GetJobCategory(ctx.Context(), payload.JobCategoryID)
	if err != nil {
		c.Logger.Error("Create job detail category parent lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if parent == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job category ID not found")
	}

	existing, err := c.Store.FindJobDetailCategoryByName(ctx.Context(), payload.Name)
	if err != nil {
		c.Logger.Error("Create job detail category name check error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Job detail category name already existed")
	}

	record := &JobDetailCategory{
		Name:          payload.Name,
		JobCategoryID: payload.JobCategoryID,
	}
	if err := c.Store.CreateJobDetailCategory(ctx.Context(), record); err != nil {
		c.Logger.Error("Create job detail category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusCreated, "Create job detail category successfully")
}

func (c *JobDetailCategoryController) Update(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	payload := new(JobDetailCategoryRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	record, err := c.Store.GetJobDetailCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Update job detail category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job detail category ID not found")
	}

	conflicting, err := c.Store.FindJobDetailCategoryByName(ctx.Context(), payload.Name)
	if err != nil {
		c.Logger.Error("Update job detail category name check error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if conflicting != nil && conflicting.ID != id {
		return jobhub.Respond(ctx, router.StatusBadRequest, "New job detail category name already existed")
	}

	parent, err := c.Store.GetJobCategory(ctx.Context(), payload.JobCategoryID)
	if err != nil {
		c.Logger.Error("Update job detail category parent lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if parent == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Updated job category ID not found")
	}

	record.Name = payload.Name
	record.JobCategoryID = payload.JobCategoryID
	if err := c.Store.UpdateJobDetailCategory(ctx.Context(), record); err != nil {
		c.Logger.Error("Update job detail category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Update job detail category successfully", record)
}

// UploadImage replaces the category image. Body is the raw image; the
// previous file is removed once the new name is persisted.
func (c *JobDetailCategoryController) UploadImage(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJobDetailCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Upload job detail category image lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job detail category ID not found")
	}

	name, err := c.Images.Save(ctx.Body(), ctx.Header("Content-Type"))
	if err != nil {
		c.Logger.Error("Upload job detail category image save error", "error", err)
		status, message := jobhub.HTTPStatusFor(err)
		return jobhub.Respond(ctx, status, message)
	}

	previous := record.Image
	record.Image = name
	if err := c.Store.UpdateJobDetailCategory(ctx.Context(), record, "image"); err != nil {
		c.Logger.Error("Upload job detail category image update error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	if previous != "" && previous != name {
		if err := c.Images.Remove(previous); err != nil {
			c.Logger.Warn("Failed to remove previous image", "error", err, "image", previous)
		}
	}

	return jobhub.RespondContent(ctx, router.StatusCreated, "Upload image successfully", record)
}

func (c *JobDetailCategoryController) Delete(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJobDetailCategory(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Delete job detail category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job detail category ID not found")
	}

	if err := c.Store.DeleteJobDetailCategory(ctx.Context(), id); err != nil {
		c.Logger.Error("Delete job detail category error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusOK, "Delete job detail category successfully")
}

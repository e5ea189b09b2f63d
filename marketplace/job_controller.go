package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// JobController serves job posting CRUD, search, pagination, and image
// upload.
type JobController struct {
	Logger jobhub.Logger
	Store  *Store
	Images *ImageStore
}

// JobRequest is the create/update payload
type JobRequest struct {
	Name                string    `form:"name" json:"name"`
	Rate                int       `form:"rate" json:"rate"`
	Price               float64   `form:"price" json:"price"`
	Description         string    `form:"description" json:"description"`
	ShortDescription    string    `form:"short_description" json:"short_description"`
	Stars               int       `form:"stars" json:"stars"`
	JobDetailCategoryID uuid.UUID `form:"job_detail_category_id" json:"job_detail_category_id"`
	Creator             uuid.UUID `form:"creator" json:"creator"`
}

// Validate will run validation rules
func (r JobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Stars, validation.Min(0), validation.Max(5)),
		validation.Field(&r.JobDetailCategoryID, validation.By(requiredUUID)),
		validation.Field(&r.Creator, validation.By(requiredUUID)),
	)
}

func (c *JobController) List(ctx router.Context) error {
	records, err := c.Store.ListJobs(ctx.Context())
	if err != nil {
		c.Logger.Error("List jobs error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get job list successfully", records)
}

func (c *JobController) Search(ctx router.Context) error {
	name := ctx.Query("name", "")

	records, err := c.Store.SearchJobs(ctx.Context(), name)
	if err != nil {
		c.Logger.Error("Search jobs error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get jobs by searching name successfully", records)
}

func (c *JobController) Page(ctx router.Context) error {
	limit, offset, keyword := pageParams(ctx)

	records, err := c.Store.PageJobs(ctx.Context(), keyword, limit, offset)
	if err != nil {
		c.Logger.Error("Page jobs error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get job list successfully", records)
}

func (c *JobController) Get(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Get job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get job successfully", record)
}

func (c *JobController) Create(ctx router.Context) error {
	payload := new(JobRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	detail, err := c.Store.GetJobDetailCategory(ctx.Context(), payload.JobDetailCategoryID)
	if err != nil {
		c.Logger.Error("Create job detail category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	creatorExists, err := c.Store.UserExists(ctx.Context(), payload.Creator)
	if err != nil {
		c.Logger.Error("Create job creator lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	if detail == nil || !creatorExists {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job detail category id or creator ID not found")
	}

	existing, err := c.Store.FindJobByName(ctx.Context(), payload.Name, payload.JobDetailCategoryID)
	if err != nil {
		c.Logger.Error("Create job name check error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Job name already exists")
	}

	record := &Job{
		Name:                payload.Name,
		Rate:                payload.Rate,
		Price:               payload.Price,
		Description:         payload.Description,
		ShortDescription:    payload.ShortDescription,
		Stars:               payload.Stars,
		JobDetailCategoryID: payload.JobDetailCategoryID,
		CreatorID:           payload.Creator,
	}
	if err := c.Store.CreateJob(ctx.Context(), record); err != nil {
		c.Logger.Error("Create job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusCreated, "Create job successfully")
}

func (c *JobController) Update(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	payload := new(JobRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	record, err := c.Store.GetJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Update job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	detail, err := c.Store.GetJobDetailCategory(ctx.Context(), payload.JobDetailCategoryID)
	if err != nil {
		c.Logger.Error("Update job detail category lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if detail == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job Detail Category ID not found")
	}

	conflicting, err := c.Store.FindJobByName(ctx.Context(), payload.Name, payload.JobDetailCategoryID)
	if err != nil {
		c.Logger.Error("Update job name check error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if conflicting != nil && conflicting.ID != id {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Job name already exists")
	}

	record.Name = payload.Name
	record.Rate = payload.Rate
	record.Price = payload.Price
	record.Description = payload.Description
	record.ShortDescription = payload.ShortDescription
	record.Stars = payload.Stars
	record.JobDetailCategoryID = payload.JobDetailCategoryID
	record.CreatorID = payload.Creator

	if err := c.Store.UpdateJob(ctx.Context(), record); err != nil {
		c.Logger.Error("Update job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Update job successfully", record)
}

// UploadImage replaces the job image. Body is the raw image bytes.
func (c *JobController) UploadImage(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Upload job image lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	name, err := c.Images.Save(ctx.Body(), ctx.Header("Content-Type"))
	if err != nil {
		c.Logger.Error("Upload job image save error", "error", err)
		status, message := jobhub.HTTPStatusFor(err)
		return jobhub.Respond(ctx, status, message)
	}

	previous := record.Image
	updated, err := c.Store.SetJobImage(ctx.Context(), id, name)
	if err != nil {
		c.Logger.Error("Upload job image update error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	if previous != "" && previous != name {
		if err := c.Images.Remove(previous); err != nil {
			c.Logger.Warn("Failed to remove previous image", "error", err, "image", previous)
		}
	}

	return jobhub.RespondContent(ctx, router.StatusCreated, "Upload image successfully", updated)
}

func (c *JobController) Delete(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Delete job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	if err := c.Store.DeleteJob(ctx.Context(), id); err != nil {
		c.Logger.Error("Delete job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusOK, "Delete job successfully")
}

package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// HireJobController serves hire transaction CRUD and pagination.
type HireJobController struct {
	Logger jobhub.Logger
	Store  *Store
}

// HireJobRequest is the create/update payload
type HireJobRequest struct {
	UserID    uuid.UUID `form:"user_id" json:"user_id"`
	JobID     uuid.UUID `form:"job_id" json:"job_id"`
	Completed bool      `form:"completed" json:"completed"`
}

// Validate will run validation rules
func (r HireJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.By(requiredUUID)),
		validation.Field(&r.JobID, validation.By(requiredUUID)),
	)
}

func (c *HireJobController) List(ctx router.Context) error {
	records, err := c.Store.ListHireJobs(ctx.Context())
	if err != nil {
		c.Logger.Error("List hire jobs error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get hire job list successfully", records)
}

func (c *HireJobController) Page(ctx router.Context) error {
	limit, offset, keyword := pageParams(ctx)

	records, err := c.Store.PageHireJobs(ctx.Context(), keyword, limit, offset)
	if err != nil {
		c.Logger.Error("Page hire jobs error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get hire job list successfully", records)
}

func (c *HireJobController) Get(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetHireJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Get hire job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Hire job ID not found")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get hire job successfully", record)
}

func (c *HireJobController) Create(ctx router.Context) error {
	payload := new(HireJobRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	userExists, err := c.Store.UserExists(ctx.Context(), payload.UserID)
	if err != nil {
		c.Logger.Error("Create hire job user lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if !userExists {
		return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
	}

	job, err := c.Store.GetJob(ctx.Context(), payload.JobID)
	if err != nil {
		c.Logger.Error("Create hire job job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if job == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	record := &HireJob{
		UserID:    payload.UserID,
		JobID:     payload.JobID,
		Completed: payload.Completed,
	}
	if err := c.Store.CreateHireJob(ctx.Context(), record); err != nil {
		c.Logger.Error("Create hire job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusCreated, "Create hire job successfully !")
}

func (c *HireJobController) Update(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	payload := new(HireJobRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	record, err := c.Store.GetHireJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Update hire job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Hire job ID not found")
	}

	record.UserID = payload.UserID
	record.JobID = payload.JobID
	record.Completed = payload.Completed
	if err := c.Store.UpdateHireJob(ctx.Context(), record); err != nil {
		c.Logger.Error("Update hire job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Update hire job successfully", record)
}

func (c *HireJobController) Delete(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetHireJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Delete hire job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Hire job ID not found")
	}

	if err := c.Store.DeleteHireJob(ctx.Context(), id); err != nil {
		c.Logger.Error("Delete hire job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusOK, "Delete hire job successfully")
}

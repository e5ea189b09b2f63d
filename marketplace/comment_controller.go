package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// CommentController serves comment CRUD and per-job/per-user listings.
type CommentController struct {
	Logger jobhub.Logger
	Store  *Store
}

// CommentRequest is the create payload
type CommentRequest struct {
	UserID  uuid.UUID `form:"user_id" json:"user_id"`
	JobID   uuid.UUID `form:"job_id" json:"job_id"`
	Content string    `form:"content" json:"content"`
	Stars   int       `form:"stars" json:"stars"`
}

// Validate will run validation rules
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.By(requiredUUID)),
		validation.Field(&r.JobID, validation.By(requiredUUID)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Stars, validation.Min(0), validation.Max(5)),
	)
}

// CommentUpdateRequest carries the mutable fields
type CommentUpdateRequest struct {
	Content string `form:"content" json:"content"`
	Stars   int    `form:"stars" json:"stars"`
}

// Validate will run validation rules
func (r CommentUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Stars, validation.Min(0), validation.Max(5)),
	)
}

func (c *CommentController) List(ctx router.Context) error {
	records, err := c.Store.ListComments(ctx.Context())
	if err != nil {
		c.Logger.Error("List comments error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get comment list successfully", records)
}

func (c *CommentController) Create(ctx router.Context) error {
	payload := new(CommentRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	userExists, err := c.Store.UserExists(ctx.Context(), payload.UserID)
	if err != nil {
		c.Logger.Error("Create comment user lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if !userExists {
		return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
	}

	job, err := c.Store.GetJob(ctx.Context(), payload.JobID)
	if err != nil {
		c.Logger.Error("Create comment job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if job == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	record := &Comment{
		UserID:       payload.UserID,
		JobID:        payload.JobID,
		Description:  payload.Content,
		StarsComment: payload.Stars,
	}
	if err := c.Store.CreateComment(ctx.Context(), record); err != nil {
		c.Logger.Error("Create comment error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusCreated, "Create comment successfully !")
}

func (c *CommentController) Update(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	payload := new(CommentUpdateRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	record, err := c.Store.GetComment(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Update comment lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Comment ID not found")
	}

	record.Description = payload.Content
	record.StarsComment = payload.Stars
	if err := c.Store.UpdateComment(ctx.Context(), record); err != nil {
		c.Logger.Error("Update comment error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Update comment successfully !", record)
}

func (c *CommentController) Delete(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Store.GetComment(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("Delete comment lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if record == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Comment ID not found")
	}

	if err := c.Store.DeleteComment(ctx.Context(), id); err != nil {
		c.Logger.Error("Delete comment error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusOK, "Delete comment successfully")
}

func (c *CommentController) ListByJob(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	job, err := c.Store.GetJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("List comments by job lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if job == nil {
		return jobhub.Respond(ctx, router.StatusNotFound, "Job ID not found")
	}

	records, err := c.Store.ListCommentsByJob(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("List comments by job error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get comment list by job ID successfully", records)
}

func (c *CommentController) ListByUser(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	userExists, err := c.Store.UserExists(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("List comments by user lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if !userExists {
		return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
	}

	records, err := c.Store.ListCommentsByUser(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("List comments by user error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get comment list by user ID successfully", records)
}

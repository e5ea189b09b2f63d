package marketplace

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-router"
)

// UsersController serves the admin user management surface: listing,
// creation, search, update, deletion, and avatar upload.
type UsersController struct {
	Logger jobhub.Logger
	Users  jobhub.Users
	Images *ImageStore
}

// UserRequest is the admin create/update payload. Same shape as sign-up;
// the password is bcrypt-hashed before it touches the store.
type UserRequest struct {
	Name          string     `form:"name" json:"name"`
	Email         string     `form:"email" json:"email"`
	Password      string     `form:"password" json:"password"`
	Phone         string     `form:"phone" json:"phone"`
	Birthday      *time.Time `form:"birthday" json:"birthday"`
	Gender        string     `form:"gender" json:"gender"`
	Role          string     `form:"role" json:"role"`
	Skill         []string   `form:"skill" json:"skill"`
	Certification []string   `form:"certification" json:"certification"`
}

// Validate will run validation rules
func (r UserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserUpdateRequest carries the mutable profile fields; email and
// password change through dedicated flows, matching the original update.
type UserUpdateRequest struct {
	Name          string     `form:"name" json:"name"`
	Phone         string     `form:"phone" json:"phone"`
	Birthday      *time.Time `form:"birthday" json:"birthday"`
	Gender        string     `form:"gender" json:"gender"`
	Role          string     `form:"role" json:"role"`
	Skill         []string   `form:"skill" json:"skill"`
	Certification []string   `form:"certification" json:"certification"`
}

// Validate will run validation rules
func (r UserUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

func (c *UsersController) List(ctx router.Context) error {
	records, _, err := c.Users.Page(ctx.Context(), 0, 0)
	if err != nil {
		c.Logger.Error("List users error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get users list successfully", userViews(records))
}

func (c *UsersController) Page(ctx router.Context) error {
	limit, offset, keyword := pageParams(ctx)

	records, _, err := c.Users.Search(ctx.Context(), keyword, limit, offset)
	if err != nil {
		c.Logger.Error("Page users error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get users successfully", userViews(records))
}

func (c *UsersController) Search(ctx router.Context) error {
	name := ctx.Query("name", "")

	records, _, err := c.Users.Search(ctx.Context(), name, 0, 0)
	if err != nil {
		c.Logger.Error("Search users error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	return jobhub.RespondContent(ctx, router.StatusOK, "Get users by searching name successfully", userViews(records))
}

func (c *UsersController) Get(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Users.GetByID(ctx.Context(), id.String())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
		}
		c.Logger.Error("Get user error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Get user successfully", userView(record))
}

func (c *UsersController) Create(ctx router.Context) error {
	payload := new(UserRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	existing, err := c.Users.GetByEmail(ctx.Context(), payload.Email)
	if err != nil && !repository.IsRecordNotFound(err) {
		c.Logger.Error("Create user email lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Email already existed")
	}

	hash, err := jobhub.HashPassword(payload.Password)
	if err != nil {
		c.Logger.Error("Create user hash error", "error", err)
		status, message := jobhub.HTTPStatusFor(err)
		return jobhub.Respond(ctx, status, message)
	}

	record := &jobhub.User{
		Role:          payload.Role,
		Name:          payload.Name,
		Email:         payload.Email,
		PasswordHash:  hash,
		Phone:         payload.Phone,
		Birthday:      payload.Birthday,
		Gender:        payload.Gender,
		Skill:         jobhub.JoinList(payload.Skill),
		Certification: jobhub.JoinList(payload.Certification),
	}
	if _, err := c.Users.Register(ctx.Context(), record); err != nil {
		c.Logger.Error("Create user error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusCreated, "Create user successfully")
}

func (c *UsersController) Update(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	payload := new(UserUpdateRequest)
	if err := ctx.Bind(payload); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return jobhub.Respond(ctx, router.StatusBadRequest, err.Error())
	}

	record, err := c.Users.GetByID(ctx.Context(), id.String())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
		}
		c.Logger.Error("Update user lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	record.Name = payload.Name
	record.Phone = payload.Phone
	record.Birthday = payload.Birthday
	record.Gender = payload.Gender
	record.Role = payload.Role
	record.Skill = jobhub.JoinList(payload.Skill)
	record.Certification = jobhub.JoinList(payload.Certification)

	updated, err := c.Users.Update(ctx.Context(), record, repository.UpdateByID(id.String()))
	if err != nil {
		c.Logger.Error("Update user error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.RespondContent(ctx, router.StatusOK, "Update user successfully", userView(updated))
}

// Delete removes the user and purges every active session for the
// subject, so tokens minted for the account die with it.
func (c *UsersController) Delete(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	if err := c.Users.DeleteWithSessions(ctx.Context(), id); err != nil {
		if repository.IsRecordNotFound(err) {
			return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
		}
		c.Logger.Error("Delete user error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	return jobhub.Respond(ctx, router.StatusOK, "Delete user successfully")
}

// UploadAvatar replaces the user's avatar image. Body is the raw image.
func (c *UsersController) UploadAvatar(ctx router.Context) error {
	id, ok, resp := parseIDParam(ctx, "id")
	if !ok {
		return resp
	}

	record, err := c.Users.GetByID(ctx.Context(), id.String())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return jobhub.Respond(ctx, router.StatusNotFound, "User ID not found")
		}
		c.Logger.Error("Upload avatar lookup error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	name, err := c.Images.Save(ctx.Body(), ctx.Header("Content-Type"))
	if err != nil {
		c.Logger.Error("Upload avatar save error", "error", err)
		status, message := jobhub.HTTPStatusFor(err)
		return jobhub.Respond(ctx, status, message)
	}

	previous := record.Avatar
	record.Avatar = name
	updated, err := c.Users.Update(ctx.Context(), record, repository.UpdateByID(id.String()))
	if err != nil {
		c.Logger.Error("Upload avatar update error", "error", err)
		return jobhub.Respond(ctx, router.StatusInternalServerError, "Internal server error")
	}

	if previous != "" && previous != name {
		if err := c.Images.Remove(previous); err != nil {
			c.Logger.Warn("Failed to remove previous avatar", "error", err, "image", previous)
		}
	}

	return jobhub.RespondContent(ctx, router.StatusCreated, "Upload avatar successfully", userView(updated))
}

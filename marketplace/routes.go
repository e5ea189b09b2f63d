package marketplace

import (
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
)

// Deps carries everything route registration needs.
type Deps struct {
	Logger jobhub.Logger
	Config jobhub.Config
	Auther jobhub.Middleware
	Store  *Store
	Users  jobhub.Users
	Images *ImageStore
}

// RegisterRoutes mounts the marketplace CRUD surface. Every route sits
// behind the auth guard; category and user mutations additionally require
// the admin role.
func RegisterRoutes[T any](app router.Router[T], deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	protected := deps.Auther.ProtectedRoute(deps.Config, deps.Auther.MakeGuardErrorHandler())
	adminOnly := deps.Auther.RequireRoles(jobhub.RoleAdmin)
	anyRole := deps.Auther.RequireRoles()

	jobCategories := &JobCategoryController{Logger: logger, Store: deps.Store}
	detailCategories := &JobDetailCategoryController{Logger: logger, Store: deps.Store, Images: deps.Images}
	jobs := &JobController{Logger: logger, Store: deps.Store, Images: deps.Images}
	comments := &CommentController{Logger: logger, Store: deps.Store}
	hireJobs := &HireJobController{Logger: logger, Store: deps.Store}
	users := &UsersController{Logger: logger, Users: deps.Users, Images: deps.Images}

	app.Get("/job-category", jobCategories.List, protected, anyRole)
	app.Get("/job-category/pagination", jobCategories.Page, protected, anyRole)
	app.Get("/job-category/:id", jobCategories.Get, protected, anyRole)
	app.Post("/job-category", jobCategories.Create, protected, adminOnly)
	app.Put("/job-category/:id", jobCategories.Update, protected, adminOnly)
	app.Delete("/job-category/:id", jobCategories.Delete, protected, adminOnly)

	app.Get("/job-detail-category", detailCategories.List, protected, anyRole)
	app.Get("/job-detail-category/pagination", detailCategories.Page, protected, anyRole)
	app.Get("/job-detail-category/:id", detailCategories.Get, protected, anyRole)
	app.Post("/job-detail-category", detailCategories.Create, protected, adminOnly)
	app.Put("/job-detail-category/:id", detailCategories.Update, protected, adminOnly)
	app.Post("/job-detail-category/upload-image/:id", detailCategories.UploadImage, protected, adminOnly)
	app.Delete("/job-detail-category/:id", detailCategories.Delete, protected, adminOnly)

	app.Get("/job", jobs.List, protected, anyRole)
	app.Get("/job/search", jobs.Search, protected, anyRole)
	app.Get("/job/pagination", jobs.Page, protected, anyRole)
	app.Get("/job/:id", jobs.Get, protected, anyRole)
	app.Post("/job", jobs.Create, protected, anyRole)
	app.Put("/job/:id", jobs.Update, protected, anyRole)
	app.Post("/job/upload-image/:id", jobs.UploadImage, protected, anyRole)
	app.Delete("/job/:id", jobs.Delete, protected, anyRole)

	app.Get("/comment", comments.List, protected, anyRole)
	app.Post("/comment", comments.Create, protected, anyRole)
	app.Put("/comment/:id", comments.Update, protected, anyRole)
	app.Delete("/comment/:id", comments.Delete, protected, anyRole)
	app.Get("/comment/by-job/:id", comments.ListByJob, protected, anyRole)
	app.Get("/comment/by-user/:id", comments.ListByUser, protected, anyRole)

	app.Get("/hire-job", hireJobs.List, protected, anyRole)
	app.Get("/hire-job/pagination", hireJobs.Page, protected, anyRole)
	app.Get("/hire-job/:id", hireJobs.Get, protected, anyRole)
	app.Post("/hire-job", hireJobs.Create, protected, anyRole)
	app.Put("/hire-job/:id", hireJobs.Update, protected, anyRole)
	app.Delete("/hire-job/:id", hireJobs.Delete, protected, anyRole)

	app.Get("/user", users.List, protected, adminOnly)
	app.Get("/user/pagination", users.Page, protected, adminOnly)
	app.Get("/user/search", users.Search, protected, adminOnly)
	app.Get("/user/:id", users.Get, protected, anyRole)
	app.Post("/user", users.Create, protected, adminOnly)
	app.Put("/user/:id", users.Update, protected, anyRole)
	app.Post("/user/upload-avatar/:id", users.UploadAvatar, protected, anyRole)
	app.Delete("/user/:id", users.Delete, protected, adminOnly)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

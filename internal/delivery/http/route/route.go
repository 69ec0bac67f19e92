package route

import (
	"github.com/ferdian3456/jobboard/internal/delivery/http"
	"github.com/ferdian3456/jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteConfig struct {
	App                      *fiber.App
	AuthMiddleware           *middleware.AuthMiddleware
	AuthRateLimiter          fiber.Handler
	Gatherer                 prometheus.Gatherer
	UserController           *http.UserController
	AccountController        *http.AccountController
	JobController            *http.JobController
	JobApplicationController *http.JobApplicationController
	SavedJobController       *http.SavedJobController
}

func (c *RouteConfig) SetupRoute() {
	if c.Gatherer != nil {
		c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{})))
	}

	api := c.App.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	if c.AuthRateLimiter != nil {
		authGroup.Use(c.AuthRateLimiter)
	}
	authGroup.Post("/register", c.UserController.Register)
	authGroup.Post("/login", c.UserController.Login)
	authGroup.Post("/forgot-password", c.UserController.ForgotPassword)
	authGroup.Post("/reset-password", c.UserController.ResetPassword)

	accountGroup := api.Group("/account", c.AuthMiddleware.ProtectedRoute())
	accountGroup.Get("/profile", c.UserController.GetUserInfo)
	accountGroup.Put("/profile", c.AccountController.UpdateProfile)
	accountGroup.Post("/profile-picture", c.AccountController.UpdateProfilePicture)
	accountGroup.Post("/logout", c.UserController.Logout)

	accountJobGroup := accountGroup.Group("/jobs")
	accountJobGroup.Get("/options", c.JobController.GetFormOptions)
	accountJobGroup.Post("/", c.JobController.CreateJob)
	accountJobGroup.Get("/", c.JobController.MyJobs)
	accountJobGroup.Get("/:id", c.JobController.GetJob)
	accountJobGroup.Put("/:id", c.JobController.UpdateJob)
	accountJobGroup.Delete("/:id", c.JobController.DeleteJob)

	accountGroup.Get("/applications", c.JobApplicationController.MyApplications)
	accountGroup.Delete("/applications/:id", c.JobApplicationController.RemoveApplication)
	accountGroup.Get("/saved-jobs", c.SavedJobController.SavedJobs)
	accountGroup.Delete("/saved-jobs/:id", c.SavedJobController.RemoveSavedJob)

	jobGroup := api.Group("/jobs", c.AuthMiddleware.ProtectedRoute())
	jobGroup.Post("/:id/apply", c.JobApplicationController.Apply)
	jobGroup.Post("/:id/save", c.SavedJobController.Save)
}

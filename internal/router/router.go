package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fitstack/internal/auth"
	"fitstack/internal/handler"
	"fitstack/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	bmiHandler *handler.BMIHandler,
	applicationHandler *handler.ApplicationHandler,
	conditionHandler *handler.ConditionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/register-expert", authHandler.RegisterExpert)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/refresh-tokens", authHandler.RefreshTokens)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)
	api.GET("/medical-conditions", conditionHandler.ListConditions)

	// Secured routes (require a valid access token). The parse func rejects
	// refresh and reset tokens presented as bearer credentials.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString, model.TokenTypeAccess)
		},
	}))

	// BMI routes (resource owner acting on own records)
	secured.POST("/bmi", bmiHandler.CreateRecord)
	secured.GET("/bmi", bmiHandler.ListRecords)

	// User routes (admin, or the user acting on their own profile)
	secured.GET("/users", userHandler.ListUsers, auth.RequirePermission(auth.PermissionGetUsers))
	secured.GET("/users/:id", userHandler.GetUser, auth.RequireSelfOrPermission(auth.PermissionGetUsers, "id"))
	secured.PATCH("/users/:id", userHandler.UpdateUser, auth.RequireSelfOrPermission(auth.PermissionManageUsers, "id"))
	secured.DELETE("/users/:id", userHandler.DeleteUser, auth.RequirePermission(auth.PermissionManageUsers))

	// Application routes (admin only)
	secured.PUT("/applications/:id/expert-approved", applicationHandler.ChangeApplicationStatus,
		auth.RequirePermission(auth.PermissionManageApplications))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

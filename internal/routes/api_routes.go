// becas-crm/internal/routes/api_routes.go
package routes

import (
	"becas-crm/internal/handlers"
	"becas-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	// Группа для всех API-запросов с префиксом /api
	apiGroup := api.Group("/api")
	{
		// --- РАСЧЕТЫ СТИПЕНДИЙ ---
		evaluations := apiGroup.Group("/evaluations")
		{
			evaluations.POST("", middleware.PermissionMiddleware("evaluations_run"), handlers.EvaluateHandler)
			evaluations.GET("", middleware.PermissionMiddleware("evaluations_view"), handlers.ListEvaluationsHandler)
			evaluations.GET("/:id", middleware.PermissionMiddleware("evaluations_view"), handlers.GetEvaluationHandler)
		}

		// --- СОИСКАТЕЛИ ---
		applicants := apiGroup.Group("/applicants")
		applicants.Use(middleware.PermissionMiddleware("applicants_view"))
		{
			applicants.GET("", handlers.ListApplicantsHandler)
			applicants.POST("", middleware.PermissionMiddleware("applicants_create"), handlers.CreateApplicantHandler)
			applicants.GET("/:id", handlers.GetApplicantHandler)
			applicants.PUT("/:id", middleware.PermissionMiddleware("applicants_edit"), handlers.UpdateApplicantHandler)
			applicants.DELETE("/:id", middleware.PermissionMiddleware("applicants_delete"), handlers.DeleteApplicantHandler)
		}

		// --- ЗАЯВКИ ---
		applications := apiGroup.Group("/applications")
		{
			applications.POST("/submit", middleware.PermissionMiddleware("applications_submit"), handlers.SubmitApplicationHandler)
			applications.GET("", handlers.ListApplicationsHandler)
			applications.GET("/counts", handlers.GetApplicationCountsHandler)
			applications.GET("/export", middleware.PermissionMiddleware("applications_view_all"), handlers.ExportApplicationsHandler)
			applications.GET("/:id", handlers.GetApplicationHandler)
			applications.POST("/:id/decide", middleware.PermissionMiddleware("applications_decide"), handlers.DecideApplicationHandler)
			applications.GET("/:id/notification", middleware.PermissionMiddleware("applications_view_all"), handlers.GetAwardNotificationHandler)
		}

		// --- КОНВОКАТОРИИ ---
		calls := apiGroup.Group("/calls")
		calls.Use(middleware.PermissionMiddleware("calls_view"))
		{
			calls.GET("", handlers.ListCallsHandler)
			calls.POST("", middleware.PermissionMiddleware("calls_create"), handlers.CreateCallHandler)
			calls.POST("/recognize", middleware.PermissionMiddleware("calls_create"), handlers.RecognizeCallHandler)
			calls.GET("/:id", handlers.GetCallHandler)
			calls.PUT("/:id", middleware.PermissionMiddleware("calls_edit"), handlers.UpdateCallHandler)
			calls.POST("/:id/activate", middleware.PermissionMiddleware("calls_edit"), handlers.ActivateCallHandler)
			calls.DELETE("/:id", middleware.PermissionMiddleware("calls_delete"), handlers.DeleteCallHandler)
		}

		// --- СПРАВОЧНИКИ ---
		levels := apiGroup.Group("/levels")
		{
			levels.GET("", handlers.ListLevelsHandler)
			levels.POST("", middleware.PermissionMiddleware("references_edit"), handlers.CreateLevelHandler)
			levels.PUT("/:id", middleware.PermissionMiddleware("references_edit"), handlers.UpdateLevelHandler)
			levels.DELETE("/:id", middleware.PermissionMiddleware("references_edit"), handlers.DeleteLevelHandler)
		}

		branches := apiGroup.Group("/branches")
		{
			branches.GET("", handlers.ListBranchesHandler)
			branches.POST("", middleware.PermissionMiddleware("references_edit"), handlers.CreateBranchHandler)
			branches.PUT("/:id", middleware.PermissionMiddleware("references_edit"), handlers.UpdateBranchHandler)
			branches.DELETE("/:id", middleware.PermissionMiddleware("references_edit"), handlers.DeleteBranchHandler)
		}

		// --- ПОЛЬЗОВАТЕЛИ ---
		users := apiGroup.Group("/users")
		users.Use(middleware.PermissionMiddleware("users_view"))
		{
			users.GET("", handlers.ListUsersHandler)
			users.POST("", middleware.PermissionMiddleware("users_create"), handlers.CreateUserHandler)
			users.GET("/:id", handlers.GetUserHandler)
			users.PUT("/:id", middleware.PermissionMiddleware("users_edit"), handlers.UpdateUserHandler)
			users.DELETE("/:id", middleware.PermissionMiddleware("users_delete"), handlers.DeleteUserHandler)
		}

		// --- РОЛИ ---
		roles := apiGroup.Group("/roles")
		roles.Use(middleware.PermissionMiddleware("roles_view"))
		{
			roles.GET("", handlers.ListRolesHandler)
			roles.POST("", middleware.PermissionMiddleware("roles_create"), handlers.CreateRoleHandler)
			roles.GET("/:id", handlers.GetRoleHandler)
			roles.PUT("/:id", middleware.PermissionMiddleware("roles_edit"), handlers.UpdateRoleHandler)
			roles.DELETE("/:id", middleware.PermissionMiddleware("roles_delete"), handlers.DeleteRoleHandler)
		}

		// --- ПРАВА ДОСТУПА ---
		permissions := apiGroup.Group("/permissions")
		permissions.Use(middleware.PermissionMiddleware("permissions_view"))
		{
			permissions.GET("", handlers.ListPermissionsHandler)
			permissions.POST("", middleware.PermissionMiddleware("permissions_create"), handlers.CreatePermissionHandler)
			permissions.PUT("/:id", middleware.PermissionMiddleware("permissions_edit"), handlers.UpdatePermissionHandler)
			permissions.DELETE("/:id", middleware.PermissionMiddleware("permissions_delete"), handlers.DeletePermissionHandler)
		}
	} // конец apiGroup
}

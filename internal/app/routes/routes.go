package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/controllers"
	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	campaignController *controllers.CampaignController,
	participantController *controllers.ParticipantController,
	beneficiaryController *controllers.BeneficiaryController,
	medicalController *controllers.MedicalAssistanceController,
	kafalaController *controllers.KafalaController,
	dictionaryController *controllers.DictionaryController,
	roleController *controllers.RoleController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
		auth.GET("/verify-email", authController.VerifyEmail)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Profile routes need no extra permission
	authenticated.GET("/users/me", userController.GetProfile)
	authenticated.PUT("/users/me", userController.UpdateProfile)

	// Campaign subresources each carry their own permission, so a triage
	// agent can reach participants without campaigns.manage.
	campaigns := authenticated.Group("/campaigns")
	{
		manage := authMiddleware.PermissionRequired(models.PermCampaignsManage)
		campaigns.POST("", manage, campaignController.CreateCampaign)
		campaigns.GET("", manage, campaignController.ListCampaigns)
		campaigns.GET("/:id", manage, campaignController.GetCampaign)
		campaigns.PUT("/:id", manage, campaignController.UpdateCampaign)
		campaigns.DELETE("/:id", manage, campaignController.DeleteCampaign)

		reports := authMiddleware.PermissionRequired(models.PermReportsView)
		campaigns.GET("/:id/stats", reports, campaignController.GetCampaignStats)
		campaigns.GET("/:id/stats/pdf", reports, campaignController.GetCampaignStatsPDF)

		participantsManage := authMiddleware.PermissionRequired(models.PermParticipantsManage)
		campaigns.POST("/:id/participants", participantsManage, participantController.CreateParticipant)
		campaigns.GET("/:id/participants", participantsManage, participantController.ListParticipants)
		campaigns.POST("/:id/participants/import", participantsManage, participantController.ImportParticipants)
		campaigns.GET("/:id/participants/export", participantsManage, participantController.ExportParticipants)

		beneficiariesManage := authMiddleware.PermissionRequired(models.PermBeneficiariesManage)
		campaigns.POST("/:id/beneficiaries/import", beneficiariesManage, beneficiaryController.ImportBeneficiaries)
		campaigns.GET("/:id/beneficiaries/export", beneficiariesManage, beneficiaryController.ExportBeneficiaries)
	}

	participants := authenticated.Group("/participants")
	participants.Use(authMiddleware.PermissionRequired(models.PermParticipantsManage))
	{
		participants.GET("/:id", participantController.GetParticipant)
		participants.PUT("/:id", participantController.UpdateParticipant)
		participants.DELETE("/:id", participantController.DeleteParticipant)
		participants.POST("/:id/triage", participantController.TriageParticipant)
		participants.POST("/:id/convert", participantController.ConvertParticipant)
	}

	beneficiaries := authenticated.Group("/beneficiaries")
	{
		manage := authMiddleware.PermissionRequired(models.PermBeneficiariesManage)
		beneficiaries.POST("", manage, beneficiaryController.CreateBeneficiary)
		beneficiaries.GET("", manage, beneficiaryController.ListBeneficiaries)
		beneficiaries.GET("/:id", manage, beneficiaryController.GetBeneficiary)
		beneficiaries.PUT("/:id", manage, beneficiaryController.UpdateBeneficiary)
		beneficiaries.PUT("/:id/decision", manage, beneficiaryController.UpdateDecision)
		beneficiaries.DELETE("/:id", manage, beneficiaryController.DeleteBeneficiary)

		beneficiaries.POST("/:id/assistances",
			authMiddleware.PermissionRequired(models.PermMedicalManage),
			medicalController.CreateAssistance)
	}

	assistances := authenticated.Group("/assistances")
	assistances.Use(authMiddleware.PermissionRequired(models.PermMedicalManage))
	{
		assistances.GET("", medicalController.ListAssistances)
		assistances.GET("/:id", medicalController.GetAssistance)
		assistances.PUT("/:id", medicalController.UpdateAssistance)
		assistances.POST("/:id/return", medicalController.MarkReturned)
		assistances.DELETE("/:id", medicalController.DeleteAssistance)
	}

	kafalas := authenticated.Group("/kafalas")
	kafalas.Use(authMiddleware.PermissionRequired(models.PermKafalaManage))
	{
		kafalas.POST("", kafalaController.CreateKafala)
		kafalas.GET("", kafalaController.ListKafalas)
		kafalas.GET("/:id", kafalaController.GetKafala)
		kafalas.PUT("/:id", kafalaController.UpdateKafala)
		kafalas.DELETE("/:id", kafalaController.DeleteKafala)
		kafalas.POST("/:id/document", kafalaController.AttachDocument)
		kafalas.GET("/:id/document", kafalaController.DownloadDocument)
		kafalas.DELETE("/:id/document", kafalaController.RemoveDocument)
		kafalas.GET("/:id/sheet", kafalaController.GetKafalaPDF)
	}

	templates := authenticated.Group("/templates")
	{
		templates.GET("/participants",
			authMiddleware.PermissionRequired(models.PermParticipantsManage),
			participantController.ParticipantTemplate)
		templates.GET("/beneficiaries",
			authMiddleware.PermissionRequired(models.PermBeneficiariesManage),
			beneficiaryController.BeneficiaryTemplate)
	}

	dictionaries := authenticated.Group("/dictionaries")
	dictionaries.Use(authMiddleware.PermissionRequired(models.PermDictionariesManage))
	{
		dictionaries.GET("", dictionaryController.ListKinds)
		dictionaries.GET("/:kind", dictionaryController.ListEntries)
		dictionaries.POST("/:kind", dictionaryController.CreateEntry)
		dictionaries.GET("/:kind/:id", dictionaryController.GetEntry)
		dictionaries.PUT("/:kind/:id", dictionaryController.UpdateEntry)
		dictionaries.DELETE("/:kind/:id", dictionaryController.DeleteEntry)
	}

	roles := authenticated.Group("/roles")
	roles.Use(authMiddleware.PermissionRequired(models.PermRolesManage))
	{
		roles.GET("/permissions", roleController.ListPermissions)
		roles.POST("", roleController.CreateRole)
		roles.GET("", roleController.ListRoles)
		roles.GET("/:id", roleController.GetRole)
		roles.PUT("/:id", roleController.UpdateRole)
		roles.DELETE("/:id", roleController.DeleteRole)
	}

	users := authenticated.Group("/users")
	users.Use(authMiddleware.PermissionRequired(models.PermUsersManage))
	{
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
		users.DELETE("/:id", userController.DeleteUser)
		users.POST("/:id/toggle-active", userController.ToggleActive)
		users.PUT("/:id/role", userController.AssignRole)
		users.POST("/:id/reset-password", userController.ResetUserPassword)
	}

	auditLogs := authenticated.Group("/audit-logs")
	auditLogs.Use(authMiddleware.PermissionRequired(models.PermAuditView))
	{
		auditLogs.GET("", userController.ListAuditLogs)
	}
}

package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/repository"
	"github.com/olekhw/deputy_api/internal/service"
	"go.uber.org/zap"
)

// Controller связывает сервисы с HTTP маршрутами
type Controller struct {
	scheduleService    *service.ScheduleService
	informationService *service.InformationService
	studentService     *service.StudentService
	authService        *service.AuthService
	coupleService      *service.CoupleService
	deadlineService    *service.DeadlineService

	additionalCouples *repository.AdditionalCoupleRepository
	coupleTimes       *repository.CoupleTimeRepository
	subjects          *repository.SubjectRepository
	subjectTypes      *repository.SubjectTypeRepository
	students          *repository.StudentRepository

	botToken string
	logger   *zap.Logger
}

// NewController создаёт новый контроллер
func NewController(
	scheduleService *service.ScheduleService,
	informationService *service.InformationService,
	studentService *service.StudentService,
	authService *service.AuthService,
	coupleService *service.CoupleService,
	deadlineService *service.DeadlineService,
	additionalCouples *repository.AdditionalCoupleRepository,
	coupleTimes *repository.CoupleTimeRepository,
	subjects *repository.SubjectRepository,
	subjectTypes *repository.SubjectTypeRepository,
	students *repository.StudentRepository,
	botToken string,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		scheduleService:    scheduleService,
		informationService: informationService,
		studentService:     studentService,
		authService:        authService,
		coupleService:      coupleService,
		deadlineService:    deadlineService,
		additionalCouples:  additionalCouples,
		coupleTimes:        coupleTimes,
		subjects:           subjects,
		subjectTypes:       subjectTypes,
		students:           students,
		botToken:           botToken,
		logger:             logger,
	}
}

// NewRouter настраивает маршруты бота и веб-интерфейса
func (c *Controller) NewRouter(env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")

	// Маршруты бота, защищённые статическим токеном
	botGroup := api.Group("/bot", c.botTokenMiddleware())
	{
		botGroup.GET("/schedule/day", c.getDaySchedule)
		botGroup.GET("/schedule/week", c.getWeekSchedule)
		botGroup.GET("/schedule/week/image", c.getWeekScheduleImage)

		botGroup.GET("/information/subjects", c.getSubjectsInformation)
		botGroup.GET("/information/students", c.getStudentsInformation)

		botGroup.POST("/student/authorize", c.authorizeStudent)
		botGroup.GET("/student/settings", c.getStudentSettings)
		botGroup.PUT("/student/settings", c.updateStudentSettings)
	}

	// Маршруты веб-интерфейса старосты
	frontend := api.Group("/frontend")
	{
		auth := frontend.Group("/auth")
		{
			auth.POST("/login", c.login)
			auth.POST("/login-bot", c.loginBot)
			auth.POST("/refresh", c.refresh)
		}

		private := frontend.Group("", c.jwtMiddleware())
		{
			private.GET("/couples", c.listCouples)
			private.POST("/couples", c.createCouple)
			private.PUT("/couples/:id", c.updateCouple)
			private.DELETE("/couples/:id", c.deleteCouple)

			private.GET("/additional-couples", c.listAdditionalCouples)
			private.POST("/additional-couples", c.createAdditionalCouple)
			private.PUT("/additional-couples/:id", c.updateAdditionalCouple)
			private.DELETE("/additional-couples/:id", c.deleteAdditionalCouple)

			private.GET("/couple-times", c.listCoupleTimes)
			private.GET("/subject-types", c.listSubjectTypes)

			private.GET("/subjects", c.listSubjects)
			private.POST("/subjects", c.createSubject)
			private.PUT("/subjects/:id", c.updateSubject)
			private.DELETE("/subjects/:id", c.deleteSubject)

			private.GET("/students", c.listStudents)
			private.POST("/students", c.createStudent)
			private.PUT("/students/:id", c.updateStudent)
			private.DELETE("/students/:id", c.deleteStudent)

			private.GET("/deadlines", c.listDeadlines)
			private.POST("/deadlines", c.createDeadline)
			private.PUT("/deadlines/:id", c.updateDeadline)
			private.DELETE("/deadlines/:id", c.deleteDeadline)
		}
	}

	return router
}

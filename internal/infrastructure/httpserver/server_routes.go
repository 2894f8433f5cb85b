package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")
	// rate limiting is keyed by employee, so it runs after the token check
	api.Use(s.middleware.JWT.RequireJWT(), s.middleware.RateLimit.Handler())

	attendance := api.Group("/attendance")
	attendance.GET("/today", s.getAttendanceToday)
	attendance.GET("/history", s.getAttendanceHistory)
	attendance.POST("/check-in", s.checkIn)
	attendance.POST("/check-out", s.checkOut)

	leave := api.Group("/leave")
	leave.GET("/balance", s.getLeaveBalance)
	leave.GET("/types", s.getLeaveTypes)
	leave.GET("/requests", s.listLeaveRequests)
	leave.POST("/requests", s.submitLeaveRequest)
	leave.POST("/requests/:id/cancel", s.cancelLeaveRequest)

	timeslips := api.Group("/timeslips")
	timeslips.GET("", s.listTimeslips)
	timeslips.POST("", s.submitTimeslip)

	messages := api.Group("/messages")
	messages.GET("/conversations", s.listConversations)
	messages.GET("/conversations/:id", s.getThread)
	messages.POST("/conversations/:id", s.sendMessage)

	reference := api.Group("/reference")
	reference.GET("/holidays", s.listHolidays)

	api.POST("/cache/refresh", s.refreshCache)
}

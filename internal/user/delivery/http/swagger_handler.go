package http

// Register godoc
// @Summary Register a new customer
// @Tags Users
// @Accept json
// @Produce json
// @Param user body object{username=string,email=string,password=string,fullName=string,phone=string,address=string} true "Registration payload"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a JWT
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,data=object{token=string,user=object}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Get my profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update my profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body object{email=string,fullName=string,phone=string,address=string,password=string} true "Profile fields to update"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/users/me [put]
func (h *UserHandler) UpdateProfileDoc() {}

// ListUsers godoc
// @Summary List users
// @Description List users with optional role filter (admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter (user or admin)"
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{users=array,pagination=object}}
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetStats godoc
// @Summary User statistics
// @Description Total, admin and active user counts (admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=object{totalUsers=int,adminUsers=int,activeUsers=int}}
// @Router /api/admin/users/stats [get]
func (h *UserHandler) GetStatsDoc() {}

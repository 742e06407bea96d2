package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string,full_name=string} true "User registration data"
// @Success 201 {object} object{success=bool,data=object{id=int,username=string,email=string,full_name=string,role=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary User login
// @Description Authenticate user and get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{success=bool,data=object{token=string,user=object}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Get current user profile
// @Description Get authenticated user's profile information
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{id=int,username=string,email=string,full_name=string,role=string,is_admin=bool}}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// SetAdmin godoc
// @Summary Grant or revoke admin privilege (admin)
// @Description Set the admin flag of a user; the caller must be an admin
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{is_admin=bool} true "Admin flag"
// @Success 200 {object} object{success=bool,data=object{id=int,username=string,role=string,is_admin=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /admin/users/{id}/admin [put]
func (h *UserHandler) SetAdminDoc() {}

// SetRole godoc
// @Summary Change a user's role by email (admin)
// @Description Set the role of the user with the given email; the caller must be an admin
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{email=string,role=string} true "Email and new role"
// @Success 200 {object} object{success=bool,data=object{id=int,email=string,role=string,is_admin=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /admin/users/role [put]
func (h *UserHandler) SetRoleDoc() {}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"person_registry/internal/models"
)

// signUpInput is the registration payload. The plaintext password exists
// only in this request; the service hashes it before anything is persisted.
type signUpInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type signInInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) signUp(c *gin.Context) {
	var input signUpInput
	if !h.bindJSONOrBadRequest(c, &input) {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), &models.User{
		Username:  input.Username,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		h.writeError(c, err, "sign_up_failed")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) signIn(c *gin.Context) {
	var input signInInput
	if !h.bindJSONOrBadRequest(c, &input) {
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("sign_in_failed", "username", input.Username)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, user)
}

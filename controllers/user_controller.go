package controllers

import (
	"net/http"

	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (u *UserController) GetProfile(c *gin.Context) {
	profile, err := u.users.GetProfile(c.GetUint("userID"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.users.UpdateProfile(c.GetUint("userID"), input); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// GET /user/metrics — BMI, BMR and TDEE derived from the stored profile.
func (u *UserController) GetMetrics(c *gin.Context) {
	summary, err := u.users.GetMetabolicSummary(c.GetUint("userID"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (u *UserController) DeleteAccount(c *gin.Context) {
	if err := u.users.Disable(c.GetUint("userID")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/config"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":             user.Email,
		"full_name":         user.FullName,
		"health_conditions": user.HealthConditions,
		"mfa_enabled":       user.MFAEnabled,
	})
}

type updateProfileReq struct {
	FullName         *string `json:"full_name"`
	HealthConditions *string `json:"health_conditions"`
	MFAEnabled       *bool   `json:"mfa_enabled"`
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.HealthConditions != nil {
		user.HealthConditions = *req.HealthConditions
	}
	if req.MFAEnabled != nil {
		user.MFAEnabled = *req.MFAEnabled
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

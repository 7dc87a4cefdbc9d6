// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Push  *services.PushService
	Sched *services.TriggerScheduler
}

func NewDevController(p *services.PushService, s *services.TriggerScheduler) *DevController {
	return &DevController{Push: p, Sched: s}
}

type pushReq struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// POST /dev/push-test
func (d *DevController) PushTest(c *gin.Context) {
	v, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid, _ := v.(uint)

	if d.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications unavailable"})
		return
	}

	var req pushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// sane defaults for quick tests
	if req.Title == "" {
		req.Title = "Test alert 🔔"
	}
	if req.Body == "" {
		req.Body = "This is only a test."
	}
	if req.Data == nil {
		req.Data = map[string]string{"channel": services.ChannelReminders}
	}

	d.Push.PushToUser(uid, req.Title, req.Body, req.Data)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /dev/triggers
func (d *DevController) TriggerStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pending": d.Sched.Pending()})
}

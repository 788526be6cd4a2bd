package controllers

import (
	"net/http"

	"github.com/aisyahz/tepico88/entity"
	"github.com/aisyahz/tepico88/services"
	"github.com/aisyahz/tepico88/utils"
	"github.com/gin-gonic/gin"
)

type ManageController struct {
	Service   *services.PreorderService
	TargetSen int64
}

func NewManageController(service *services.PreorderService, targetSen int64) *ManageController {
	return &ManageController{Service: service, TargetSen: targetSen}
}

// GET /manage/summary
// Recomputed from the current order list on every call; nothing persisted.
func (ctl *ManageController) Summary(c *gin.Context) {
	rows, err := ctl.Service.List()
	if err != nil {
		rows = []entity.Preorder{}
	}

	s := services.Summarize(rows, ctl.TargetSen)
	c.JSON(http.StatusOK, gin.H{
		"summary":   s,
		"completed": utils.FormatRM(s.CompletedSen),
		"target":    utils.FormatRM(s.TargetSen),
		"remaining": utils.FormatRM(s.RemainingSen),
	})
}

// GET /manage/statuses
// The fixed control order the management page renders per order.
func (ctl *ManageController) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": entity.AllStatuses()})
}

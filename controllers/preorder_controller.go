package controllers

import (
	"net/http"
	"strconv"

	"github.com/aisyahz/tepico88/entity"
	"github.com/aisyahz/tepico88/pkg/resp"
	"github.com/aisyahz/tepico88/services"
	"github.com/gin-gonic/gin"
)

type PreorderController struct {
	Service *services.PreorderService
}

func NewPreorderController(service *services.PreorderService) *PreorderController {
	return &PreorderController{Service: service}
}

// GET /preorders
// Reads degrade to an empty list, same as the menu.
func (ctl *PreorderController) List(c *gin.Context) {
	rows, err := ctl.Service.List()
	if err != nil {
		rows = []entity.Preorder{}
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

type submitLine struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"required,min=1"`
}

type submitReq struct {
	CustomerName string       `json:"customerName"`
	PickupTime   string       `json:"pickupTime"`
	Items        []submitLine `json:"items"`
}

// POST /preorders
func (ctl *PreorderController) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart := services.NewCart()
	for _, it := range req.Items {
		cart[it.MenuItemID] = it.Qty
	}

	receipt, err := ctl.Service.Submit(&services.SubmitRequest{
		CustomerName: req.CustomerName,
		PickupTime:   req.PickupTime,
		Cart:         cart,
	})
	if err != nil {
		if services.IsValidationErr(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, receipt)
}

type updateStatusReq struct {
	Status entity.Status `json:"status" binding:"required"`
}

// PATCH /manage/preorders/:id/status
func (ctl *PreorderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid preorder id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	switch {
	case err == services.ErrUnknownStatus:
		resp.BadRequest(c, err.Error())
	case err == services.ErrPreorderNotFound:
		resp.NotFound(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, row)
	}
}

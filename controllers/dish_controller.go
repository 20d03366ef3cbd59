// controllers/dish_controller.go
package controllers

import (
	"strconv"

	"comboapi/pkg/resp"
	"comboapi/repository"
	"comboapi/services"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	Service *services.DishService
}

func NewDishController(s *services.DishService) *DishController {
	return &DishController{Service: s}
}

// POST /admin/dishes
func (ctl *DishController) Create(c *gin.Context) {
	var req services.SaveDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Service.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// GET /admin/dishes/page?page=&pageSize=&name=&categoryId=&status=
func (ctl *DishController) Page(c *gin.Context) {
	f := repository.DishPageFilter{
		Name: c.Query("name"),
		Page: atoiDefault(c.Query("page"), 1),
	}
	f.PageSize = atoiDefault(c.Query("pageSize"), 10)
	f.CategoryID = uint(atoiDefault(c.Query("categoryId"), 0))
	if v := c.Query("status"); v != "" {
		st, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid status")
			return
		}
		f.Status = &st
	}

	page, err := ctl.Service.PageQuery(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /admin/dishes?categoryId=
func (ctl *DishController) ListByCategory(c *gin.Context) {
	categoryID := atoiDefault(c.Query("categoryId"), 0)
	dishes, err := ctl.Service.ListByCategory(uint(categoryID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// POST /admin/dishes/status/:status?id=
func (ctl *DishController) StartOrStop(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		resp.BadRequest(c, "invalid status")
		return
	}
	id := atoiDefault(c.Query("id"), 0)
	if id == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := ctl.Service.StartOrStop(status, uint(id)); err != nil {
		writeComboError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": status})
}

// DELETE /admin/dishes?ids=1,2,3
func (ctl *DishController) DeleteBatch(c *gin.Context) {
	ids, err := parseIDs(c.Query("ids"))
	if err != nil {
		resp.BadRequest(c, "invalid ids")
		return
	}
	if err := ctl.Service.DeleteBatch(ids); err != nil {
		writeComboError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": ids})
}

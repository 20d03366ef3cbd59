// controllers/combo_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"comboapi/pkg/resp"
	"comboapi/repository"
	"comboapi/services"

	"github.com/gin-gonic/gin"
)

type ComboController struct {
	Service *services.ComboService
}

func NewComboController(s *services.ComboService) *ComboController {
	return &ComboController{Service: s}
}

// POST /admin/combos
func (ctl *ComboController) Create(c *gin.Context) {
	var req services.SaveComboReq
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

// GET /admin/combos/page?page=&pageSize=&name=&categoryId=&status=
func (ctl *ComboController) Page(c *gin.Context) {
	f := repository.ComboPageFilter{
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

// GET /admin/combos/:id
func (ctl *ComboController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	detail, err := ctl.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrComboNotFound) {
			resp.NotFound(c, "combo not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PUT /admin/combos
func (ctl *ComboController) Update(c *gin.Context) {
	var req services.SaveComboReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := ctl.Service.Update(&req); err != nil {
		writeComboError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": req.ID})
}

// DELETE /admin/combos?ids=1,2,3
func (ctl *ComboController) DeleteBatch(c *gin.Context) {
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

// POST /admin/combos/status/:status?id=
func (ctl *ComboController) StartOrStop(c *gin.Context) {
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

// writeComboError maps service errors onto HTTP. Guard rejections are
// expected outcomes, not server faults.
func writeComboError(c *gin.Context, err error) {
	var del *services.DeletionNotAllowedError
	var ena *services.EnableNotAllowedError
	switch {
	case errors.Is(err, services.ErrComboNotFound), errors.Is(err, services.ErrDishNotFound):
		resp.NotFound(c, err.Error())
	case errors.As(err, &del):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": del.Error(), "id": del.ID, "reason": del.Reason})
	case errors.As(err, &ena):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": ena.Error(), "id": ena.ID, "reason": ena.Reason})
	default:
		resp.ServerError(c, err)
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseIDs(raw string) ([]uint, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(n))
	}
	if len(ids) == 0 {
		return nil, errors.New("no ids")
	}
	return ids, nil
}

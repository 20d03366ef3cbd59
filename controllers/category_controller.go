package controllers

import (
	"comboapi/pkg/resp"
	"comboapi/repository"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Repo *repository.CategoryRepository
}

func NewCategoryController(repo *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

// GET /admin/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

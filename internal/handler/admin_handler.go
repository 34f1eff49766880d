package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminListUsers 获取所有用户
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.account.AdminListUsers()
	if err != nil {
		writeServiceError(c, err, "获取用户列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  users,
		"total": len(users),
	})
}

// AdminGetUser 获取指定用户信息
func (h *Handler) AdminGetUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	user, err := h.account.AdminGetUser(uint(id))
	if err != nil {
		writeServiceError(c, err, "获取用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// AdminDeleteUser 删除指定用户
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	if err := h.account.AdminDeleteUser(uint(id)); err != nil {
		writeServiceError(c, err, "删除用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

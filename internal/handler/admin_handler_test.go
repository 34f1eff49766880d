package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func adminRouter() *gin.Engine {
	r := gin.New()
	admin := r.Group("/admin", middleware.JWTAuth(), middleware.AdminCheck())
	{
		admin.GET("/users", testHandler.AdminListUsers)
		admin.GET("/users/:id", testHandler.AdminGetUser)
		admin.DELETE("/users/:id", testHandler.AdminDeleteUser)
	}
	return r
}

// 测试内容：验证普通用户访问管理接口返回 403，管理员可列出全部用户。
func TestAdminListUsersHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	mustCreateUser(t, "alice", "abc12345", "a@example.com", "")
	admin := mustCreateUser(t, "root", "abc12345", "", consts.RoleAdmin)

	r := adminRouter()

	// 普通用户被拒
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", bearerFor(t, 1, "alice", consts.RoleUser))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}

	// 管理员可见全部用户
	req2 := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req2.Header.Set("Authorization", bearerFor(t, admin.ID, "root", consts.RoleAdmin))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}

	var resp struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	_ = json.Unmarshal(w2.Body.Bytes(), &resp)
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("期望 2 个用户，实际为 %s", w2.Body.String())
	}
}

// 测试内容：验证按 ID 查询用户的成功、非法 ID 与不存在分支。
func TestAdminGetUserHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	user := mustCreateUser(t, "alice", "abc12345", "a@example.com", "")
	admin := mustCreateUser(t, "root", "abc12345", "", consts.RoleAdmin)
	auth := bearerFor(t, admin.ID, "root", consts.RoleAdmin)

	r := adminRouter()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/admin/users/%d", user.ID), nil)
	req.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	req2 := httptest.NewRequest(http.MethodGet, "/admin/users/not-a-number", nil)
	req2.Header.Set("Authorization", auth)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w2.Code)
	}

	req3 := httptest.NewRequest(http.MethodGet, "/admin/users/99999", nil)
	req3.Header.Set("Authorization", auth)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w3.Code)
	}
}

// 测试内容：验证管理员删除用户接口及重复删除返回 404。
func TestAdminDeleteUserHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	user := mustCreateUser(t, "alice", "abc12345", "a@example.com", "")
	admin := mustCreateUser(t, "root", "abc12345", "", consts.RoleAdmin)
	auth := bearerFor(t, admin.ID, "root", consts.RoleAdmin)

	r := adminRouter()

	target := fmt.Sprintf("/admin/users/%d", user.ID)
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	if _, err := testStore.FindByID(user.ID); err == nil {
		t.Fatal("期望用户已被删除")
	}

	req2 := httptest.NewRequest(http.MethodDelete, target, nil)
	req2.Header.Set("Authorization", auth)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d body=%s", w2.Code, w2.Body.String())
	}
}

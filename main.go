package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guducat/SaToken-FastStart/internal/config"
	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/db"
	"github.com/Guducat/SaToken-FastStart/internal/handler"
	"github.com/Guducat/SaToken-FastStart/internal/repository"
	"github.com/Guducat/SaToken-FastStart/internal/router"
	"github.com/Guducat/SaToken-FastStart/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	config.InitConfig("")
	db.InitDB()

	// 组装核心服务
	userStore := repository.NewUserRepository(db.DB)
	tokenRegistry := service.NewResetTokenRegistry()
	accountService := service.NewAccountService(userStore, tokenRegistry)
	authService := service.NewAuthService()
	captchaService := service.NewCaptchaService()

	// 启动重置令牌后台清理
	tokenRegistry.StartSweeper(consts.ResetTokenSweepInterval)

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	h := handler.NewHandler(accountService, authService, captchaService)
	router.InitRouter(r, h)

	// 打印启动欢迎语
	printWelcomeMessage()

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	tokenRegistry.StopSweeper()
	_ = service.CloseRedisClient()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	log.Println("✅ 服务已退出")
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

package main

import (
	"avalon-room-be/internal/api/http"
	"avalon-room-be/internal/config"
	"avalon-room-be/internal/logger"
	"avalon-room-be/internal/service"
	"avalon-room-be/internal/state"
)

func main() {
	// 加载配置
	cfg := config.InitConfig()

	// 初始化日志器
	logger.InitLogger(cfg.LogLevel)

	// 组装应用状态
	appState := state.NewAppState(
		cfg,
		service.NewRoomService(),
	)

	// 启动服务器
	http.RunServer(appState)
}

package state

import (
	"avalon-room-be/internal/config"
	"avalon-room-be/internal/service"
)

// AppState 在进程启动时组装一次，之后注入到所有的 HTTP 和 WebSocket 处理器
// 房间表的生命周期由其中的 RoomService 管理，进程内不会被重置
type AppState struct {
	Cfg     *config.AppConfig
	RoomSvc *service.RoomService
}

func NewAppState(
	cfg *config.AppConfig,
	roomSvc *service.RoomService,
) *AppState {
	return &AppState{
		Cfg:     cfg,
		RoomSvc: roomSvc,
	}
}

package http

import (
	"fmt"

	"avalon-room-be/internal/api/http/websocket"
	"avalon-room-be/internal/state"

	"github.com/kataras/iris/v12"
)

// NewApp 组装路由，拆出来方便测试
func NewApp(appState *state.AppState) *iris.Application {
	app := iris.Default()

	hub := websocket.NewHub()

	app.HandleDir(
		"/",
		iris.Dir("./public"),
		iris.DirOptions{
			IndexName: "index.html",
			SPA:       true,
			Compress:  true,
		},
	)

	api := app.Party("/api")

	api.Post("/create-room", CreateRoom(appState))
	api.Post("/join-room", JoinRoom(appState))
	api.Post("/get-role", GetRole(appState, hub))
	api.Get("/room-status/{roomCode}", RoomStatus(appState))

	app.Get("/ws", websocket.JoinRoom(appState, hub))

	return app
}

func RunServer(appState *state.AppState) {
	app := NewApp(appState)

	addr := fmt.Sprintf(
		"%s:%d",
		appState.Cfg.Host,
		appState.Cfg.Port,
	)

	app.Listen(addr)
}

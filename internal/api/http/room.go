package http

import (
	"avalon-room-be/internal/api/http/websocket"
	"avalon-room-be/internal/service/dto"
	"avalon-room-be/internal/state"

	"github.com/kataras/iris/v12"
)

// 所有错误都通过 {success:false, message} 返回，HTTP 状态码保持 200
// 前端只看 success 字段
func failJSON(ctx iris.Context, err error) {
	ctx.JSON(iris.Map{
		"success": false,
		"message": err.Error(),
	})
}

func CreateRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp := appState.RoomSvc.CreateRoom()

		ctx.JSON(resp)
	}
}

func JoinRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.JoinRoomRequest

		// 请求体缺失或损坏时按零值处理，自然落到房间不存在的分支
		_ = ctx.ReadJSON(&req)

		resp, err := appState.RoomSvc.JoinRoom(req)
		if err != nil {
			failJSON(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func GetRole(appState *state.AppState, hub *websocket.Hub) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.GetRoleRequest

		_ = ctx.ReadJSON(&req)

		resp, err := appState.RoomSvc.GetRole(req)
		if err != nil {
			failJSON(ctx, err)
			return
		}

		// 揭示成功后把最新进度推给这个房间的所有订阅者
		hub.Broadcast(req.RoomCode, resp.RoomStatus)

		ctx.JSON(resp)
	}
}

func RoomStatus(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		code := ctx.Params().Get("roomCode")

		resp, err := appState.RoomSvc.GetRoomStatus(code)
		if err != nil {
			failJSON(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

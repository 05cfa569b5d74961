package websocket

import (
	"encoding/json"
	"time"

	"avalon-room-be/internal/state"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// JoinRoom 把连接升级为 WebSocket 并进入事件循环
// 客户端通过 join-room 事件订阅房间主题，之后会持续收到 room-update
func JoinRoom(appState *state.AppState, hub *Hub) iris.Handler {
	return func(ctx iris.Context) {
		conn, err := upgrader.Upgrade(
			ctx.ResponseWriter(),
			ctx.Request(),
			nil,
		)
		if err != nil {
			zap.L().Error("升级到WebSocket失败", zap.Error(err))
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		conn.SetPongHandler(heartbeatHandler(conn))

		clientIP := ctx.RemoteAddr()

		zap.L().Info(
			"新客户端连接",
			zap.String("client_ip", clientIP),
		)

		// 这个连接的发送通道，写协程从这里取事件
		respCh := make(chan ServerEvent, 16)

		// 本连接订阅过的房间，断开时统一退订
		subscriptions := make(map[string]string)

		defer func() {
			for roomCode, clientID := range subscriptions {
				hub.Unsubscribe(roomCode, clientID)
			}

			zap.L().Info(
				"客户端断开连接",
				zap.String("client_ip", clientIP),
			)
		}()

		// 写协程的退出信号
		writeDoneCh := make(chan struct{})
		defer close(writeDoneCh)

		// 写入协程：心跳 + 事件下发
		go func() {
			ticker := time.NewTicker(HEARTBEAT_INTERVAL)
			defer ticker.Stop()

			for {
				select {
				case <-writeDoneCh:
					return

				case <-ticker.C:
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						zap.L().Error(
							"发送心跳失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))

				case event := <-respCh:
					if err := conn.WriteJSON(event); err != nil {
						zap.L().Error(
							"发送消息失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}
				}
			}
		}()

		// 读取循环（主协程）
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
				) {
					zap.L().Error(
						"读取消息失败",
						zap.String("client_ip", clientIP),
						zap.Error(err),
					)
				}

				return
			}

			var event ClientEvent

			if err := json.Unmarshal(msg, &event); err != nil {
				zap.L().Error(
					"解析消息失败",
					zap.String("client_ip", clientIP),
					zap.Error(err),
				)

				continue
			}

			switch event.Event {
			case EVENT_JOIN_ROOM:
				var data JoinRoomEvent
				if err := json.Unmarshal(event.Data, &data); err != nil || data.RoomCode == "" {
					zap.L().Warn(
						"join-room 事件缺少房间代码",
						zap.String("client_ip", clientIP),
					)
					continue
				}

				// 重复 join-room 同一个房间是幂等的
				if _, ok := subscriptions[data.RoomCode]; !ok {
					subscriptions[data.RoomCode] = hub.Subscribe(data.RoomCode, respCh)
				}

				zap.L().Info(
					"客户端加入房间",
					zap.String("client_ip", clientIP),
					zap.String("room_code", data.RoomCode),
				)

				// 立即把当前进度广播给这个房间的所有订阅者
				if resp, err := appState.RoomSvc.GetRoomStatus(data.RoomCode); err == nil {
					hub.Broadcast(data.RoomCode, resp.RoomStatus)
				}

			case EVENT_PLAYER_VIEWED:
				var data PlayerViewedEvent
				if err := json.Unmarshal(event.Data, &data); err != nil || data.RoomCode == "" {
					continue
				}

				// 这里不写任何状态，已查看标记只走 /api/get-role
				if resp, err := appState.RoomSvc.GetRoomStatus(data.RoomCode); err == nil {
					hub.Broadcast(data.RoomCode, resp.RoomStatus)
				}

			default:
				zap.L().Debug(
					"未知的事件类型",
					zap.String("client_ip", clientIP),
					zap.String("event", event.Event),
				)
			}
		}
	}
}

package websocket

import (
	"encoding/json"

	"avalon-room-be/internal/service/game"
)

// 客户端发送的事件
const (
	EVENT_JOIN_ROOM     = "join-room"
	EVENT_PLAYER_VIEWED = "player-viewed"
)

// 服务器发送的事件
const (
	EVENT_ROOM_UPDATE = "room-update"
)

type ClientEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type JoinRoomEvent struct {
	RoomCode string `json:"roomCode"`
}

// player-viewed 只用来触发一次广播
// 座位的已查看标记只会通过 /api/get-role 写入
type PlayerViewedEvent struct {
	RoomCode   string `json:"roomCode"`
	SeatNumber int    `json:"seatNumber"`
}

type ServerEvent struct {
	Event string          `json:"event"`
	Data  game.RoomStatus `json:"data"`
}

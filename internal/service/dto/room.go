package dto

import "avalon-room-be/internal/service/game"

type CreateRoomResponse struct {
	Success  bool   `json:"success"`
	RoomCode string `json:"roomCode"`
}

type JoinRoomRequest struct {
	RoomCode string `json:"roomCode"`
}

type JoinRoomResponse struct {
	Success      bool   `json:"success"`
	RoomCode     string `json:"roomCode"`
	TotalPlayers int    `json:"totalPlayers"`
}

type GetRoleRequest struct {
	RoomCode   string `json:"roomCode"`
	SeatNumber int    `json:"seatNumber"`
}

type GetRoleResponse struct {
	Success    bool            `json:"success"`
	Player     game.RoleView   `json:"player"`
	RoomStatus game.RoomStatus `json:"roomStatus"`
}

// 状态字段直接平铺在顶层
type RoomStatusResponse struct {
	Success bool `json:"success"`
	game.RoomStatus
}

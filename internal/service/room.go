package service

import (
	"sync"
	"time"

	"avalon-room-be/internal/service/dto"
	"avalon-room-be/internal/service/game"

	"go.uber.org/zap"
)

const (
	// 每 30 分钟清理一次过期房间
	CLEANUP_INTERVAL = 30 * time.Minute
	// 房间保留 1 小时，到期无条件删除
	ROOM_TTL = time.Hour
)

type RoomService struct {
	state *roomServiceState
}

type roomServiceState struct {
	mu sync.RWMutex

	// 从房间代码到房间实体的映射
	rooms map[string]*game.Room

	cleanUpDone chan struct{}
}

func NewRoomService() *RoomService {
	state := &roomServiceState{
		rooms:       make(map[string]*game.Room),
		cleanUpDone: make(chan struct{}),
	}

	// 启动一个 goroutine 定期清理过期的房间
	go startCleanupLoop(state)

	return &RoomService{
		state: state,
	}
}

func startCleanupLoop(state *roomServiceState) {
	ticker := time.NewTicker(CLEANUP_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-state.cleanUpDone:
			return

		case <-ticker.C:
			state.mu.Lock()
			sweepExpiredRooms(state, time.Now())
			state.mu.Unlock()
		}
	}
}

// sweepExpiredRooms 删除所有超过保留时间的房间，调用方必须持有写锁
func sweepExpiredRooms(state *roomServiceState, now time.Time) {
	for code, room := range state.rooms {
		if now.Sub(room.CreatedAt) > ROOM_TTL {
			delete(state.rooms, code)

			zap.S().Infof("清理过期房间: %s", code)
		}
	}
}

func (rs *RoomService) Close() {
	close(rs.state.cleanUpDone)
}

// CreateRoom 创建一个新房间并完成角色分配
func (rs *RoomService) CreateRoom() dto.CreateRoomResponse {
	rs.state.mu.Lock()

	// 代码撞上已有房间时重新生成，而不是覆盖
	code := game.GenerateRoomCode()
	for rs.state.rooms[code] != nil {
		code = game.GenerateRoomCode()
	}

	room := game.NewRoom(code)
	rs.state.rooms[code] = room

	rs.state.mu.Unlock()

	zap.S().Infof("房间已创建: %s, 幻妖座位: %d, 摩根勒菲座位: %d",
		code, room.PurpleSeat, room.RedSeat)

	return dto.CreateRoomResponse{
		Success:  true,
		RoomCode: code,
	}
}

func (rs *RoomService) JoinRoom(req dto.JoinRoomRequest) (dto.JoinRoomResponse, error) {
	rs.state.mu.RLock()
	defer rs.state.mu.RUnlock()

	if rs.state.rooms[req.RoomCode] == nil {
		return dto.JoinRoomResponse{}, game.ErrRoomNotFound
	}

	return dto.JoinRoomResponse{
		Success:      true,
		RoomCode:     req.RoomCode,
		TotalPlayers: game.TOTAL_PLAYERS,
	}, nil
}

// GetRole 揭示指定座位的角色并返回最新的房间进度
// 这是房间创建之后唯一的写路径
func (rs *RoomService) GetRole(req dto.GetRoleRequest) (dto.GetRoleResponse, error) {
	rs.state.mu.Lock()
	defer rs.state.mu.Unlock()

	room := rs.state.rooms[req.RoomCode]
	if room == nil {
		return dto.GetRoleResponse{}, game.ErrRoomNotFound
	}

	view, err := room.Reveal(req.SeatNumber)
	if err != nil {
		return dto.GetRoleResponse{}, err
	}

	zap.S().Debugf("房间 %s 座位 %d 查看了角色", req.RoomCode, req.SeatNumber)

	return dto.GetRoleResponse{
		Success:    true,
		Player:     view,
		RoomStatus: room.Status(),
	}, nil
}

func (rs *RoomService) GetRoomStatus(code string) (dto.RoomStatusResponse, error) {
	rs.state.mu.RLock()
	defer rs.state.mu.RUnlock()

	room := rs.state.rooms[code]
	if room == nil {
		return dto.RoomStatusResponse{}, game.ErrRoomNotFound
	}

	return dto.RoomStatusResponse{
		Success:    true,
		RoomStatus: room.Status(),
	}, nil
}

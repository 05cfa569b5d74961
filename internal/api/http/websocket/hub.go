package websocket

import (
	"sync"

	"avalon-room-be/internal/service/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub 按房间代码管理订阅者，本身不保存任何房间状态
// 只是把 RoomService 算出来的进度扇出给各个连接
type Hub struct {
	mu sync.RWMutex

	// 从房间代码到订阅者集合的映射，订阅者用客户端 ID 标识
	rooms map[string]map[string]chan<- ServerEvent
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[string]chan<- ServerEvent),
	}
}

// Subscribe 把一个连接的发送通道注册到指定房间的主题下
// 返回分配的客户端 ID，退订时用
func (h *Hub) Subscribe(roomCode string, ch chan<- ServerEvent) string {
	clientID := uuid.New().String()[:8]

	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.rooms[roomCode]
	if clients == nil {
		clients = make(map[string]chan<- ServerEvent)
		h.rooms[roomCode] = clients
	}

	clients[clientID] = ch

	zap.S().Debugf("客户端 %s 订阅房间 %s", clientID, roomCode)

	return clientID
}

func (h *Hub) Unsubscribe(roomCode, clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.rooms[roomCode]
	if clients == nil {
		return
	}

	delete(clients, clientID)

	// 最后一个订阅者离开后回收主题
	if len(clients) == 0 {
		delete(h.rooms, roomCode)
	}

	zap.S().Debugf("客户端 %s 退订房间 %s", clientID, roomCode)
}

// Broadcast 把最新的房间进度推给该房间的所有订阅者
// 发送通道已满的连接直接跳过，不阻塞其他订阅者
func (h *Hub) Broadcast(roomCode string, status game.RoomStatus) {
	event := ServerEvent{
		Event: EVENT_ROOM_UPDATE,
		Data:  status,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for clientID, ch := range h.rooms[roomCode] {
		select {
		case ch <- event:
		default:
			zap.S().Warnf("客户端 %s 发送通道已满，丢弃房间 %s 的更新", clientID, roomCode)
		}
	}
}

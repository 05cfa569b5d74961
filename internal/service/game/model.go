package game

import "time"

// 阵营
const (
	TEAM_BLUE   = "blue"
	TEAM_PURPLE = "purple"
	TEAM_RED    = "red"
)

// RoleDefinition 是固定的角色卡定义，房间创建后不可变
type RoleDefinition struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	Description string `json:"description"`
}

// PlayerSlot 是房间内的一个座位，绑定一个被分配的角色
// 角色信息在创建后只读，只有 Viewed 标记会被翻转（且只会从 false 到 true）
type PlayerSlot struct {
	Seat        int    `json:"seat"`
	Role        string `json:"role"`
	Team        string `json:"team"`
	Description string `json:"description"`
	Viewed      bool   `json:"viewed"`
}

type Room struct {
	Code    string
	Players []PlayerSlot

	// 幻妖和摩根勒菲所在的座位号，不存在时为 -1
	PurpleSeat int
	RedSeat    int

	CreatedAt time.Time

	// 已查看过角色的座位号集合
	Viewers map[int]struct{}
}

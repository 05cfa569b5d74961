package game

import "errors"

var (
	ErrRoomNotFound   = errors.New("房间不存在")
	ErrInvalidSeat    = errors.New("座位号无效")
	ErrPlayerNotFound = errors.New("获取角色失败")
)

// 特殊情报类型
const (
	SPECIAL_RED_KNOWS_PURPLE = "red_knows_purple"
	SPECIAL_PURPLE_INFO      = "purple_info"
)

// 幻妖看到的固定提示
const PURPLE_INFO_MESSAGE = "摩根勒菲认识你，但你不知道她是谁"

type SpecialInfo struct {
	Type       string `json:"type"`
	TargetSeat int    `json:"targetSeat,omitempty"`
	Message    string `json:"message,omitempty"`
}

// RoleView 是单个座位的角色揭示结果
type RoleView struct {
	Seat        int          `json:"seat"`
	Role        string       `json:"role"`
	Team        string       `json:"team"`
	Description string       `json:"description"`
	SpecialInfo *SpecialInfo `json:"specialInfo,omitempty"`
}

type RoomStatus struct {
	Code          string `json:"code"`
	TotalPlayers  int    `json:"totalPlayers"`
	ViewedPlayers int    `json:"viewedPlayers"`
	AllViewed     bool   `json:"allViewed"`
}

// Reveal 返回指定座位的角色信息，并把该座位标记为已查看
// 重复揭示同一座位是幂等的，不会改变已查看人数
// 调用方（RoomService）负责加锁
func (r *Room) Reveal(seat int) (RoleView, error) {
	if seat < 1 || seat > TOTAL_PLAYERS {
		return RoleView{}, ErrInvalidSeat
	}

	var slot *PlayerSlot
	for i := range r.Players {
		if r.Players[i].Seat == seat {
			slot = &r.Players[i]
			break
		}
	}

	// 座位 1..5 的不变量下不应该发生，仍然按错误处理
	if slot == nil {
		return RoleView{}, ErrPlayerNotFound
	}

	view := RoleView{
		Seat:        slot.Seat,
		Role:        slot.Role,
		Team:        slot.Team,
		Description: slot.Description,
	}

	switch slot.Team {
	case TEAM_RED:
		// 摩根勒菲知道幻妖的座位
		if r.PurpleSeat != -1 {
			view.SpecialInfo = &SpecialInfo{
				Type:       SPECIAL_RED_KNOWS_PURPLE,
				TargetSeat: r.PurpleSeat,
			}
		}
	case TEAM_PURPLE:
		view.SpecialInfo = &SpecialInfo{
			Type:    SPECIAL_PURPLE_INFO,
			Message: PURPLE_INFO_MESSAGE,
		}
	}

	slot.Viewed = true
	r.Viewers[seat] = struct{}{}

	return view, nil
}

// Status 汇总房间的查看进度，纯读操作
func (r *Room) Status() RoomStatus {
	viewed := len(r.Viewers)

	return RoomStatus{
		Code:          r.Code,
		TotalPlayers:  TOTAL_PLAYERS,
		ViewedPlayers: viewed,
		AllViewed:     viewed == TOTAL_PLAYERS,
	}
}

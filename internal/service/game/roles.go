package game

import (
	"math/rand"
	"time"
)

// 固定的五人局角色表：三个忠臣、一个幻妖、一个摩根勒菲
var ROLES = [5]RoleDefinition{
	{Name: "忠臣", Team: TEAM_BLUE, Description: "忠诚的圆桌骑士"},
	{Name: "忠臣", Team: TEAM_BLUE, Description: "忠诚的圆桌骑士"},
	{Name: "忠臣", Team: TEAM_BLUE, Description: "忠诚的圆桌骑士"},
	{Name: "幻妖", Team: TEAM_PURPLE, Description: "邪恶阵营的迷惑者"},
	{Name: "摩根勒菲", Team: TEAM_RED, Description: "邪恶的女巫"},
}

const TOTAL_PLAYERS = 5

// 房间代码字符表，去掉了容易混淆的 I O 0 1
const CODE_ALPHABET = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const CODE_LENGTH = 4

// GenerateRoomCode 生成一个 4 位房间代码
// 不保证唯一性，去重由 RoomService 在持锁状态下负责
func GenerateRoomCode() string {
	buf := make([]byte, CODE_LENGTH)
	for i := range buf {
		buf[i] = CODE_ALPHABET[rand.Intn(len(CODE_ALPHABET))]
	}

	return string(buf)
}

// NewRoom 用给定代码创建一个房间：
// 对角色表做等概率洗牌后按顺序绑定到 1..5 号座位
func NewRoom(code string) *Room {
	roles := ROLES
	rand.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	players := make([]PlayerSlot, 0, TOTAL_PLAYERS)
	for idx, role := range roles {
		players = append(players, PlayerSlot{
			Seat:        idx + 1,
			Role:        role.Name,
			Team:        role.Team,
			Description: role.Description,
			Viewed:      false,
		})
	}

	// 记录幻妖和摩根勒菲的座位
	// 固定角色表下两者必然存在，但这里不做这个假设
	purpleSeat := -1
	redSeat := -1

	for _, p := range players {
		switch p.Team {
		case TEAM_PURPLE:
			purpleSeat = p.Seat
		case TEAM_RED:
			redSeat = p.Seat
		}
	}

	return &Room{
		Code:       code,
		Players:    players,
		PurpleSeat: purpleSeat,
		RedSeat:    redSeat,
		CreatedAt:  time.Now(),
		Viewers:    make(map[int]struct{}),
	}
}

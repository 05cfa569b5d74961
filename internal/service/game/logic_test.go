package game

import (
	"errors"
	"testing"
)

func TestReveal_RedSeatKnowsPurpleSeat(t *testing.T) {
	room := NewRoom("AB23")

	view, err := room.Reveal(room.RedSeat)
	if err != nil {
		t.Fatalf("reveal red seat failed: %v", err)
	}

	if view.Team != TEAM_RED {
		t.Fatalf("want team red, got %q", view.Team)
	}
	if view.SpecialInfo == nil {
		t.Fatalf("red seat should carry special info")
	}
	if view.SpecialInfo.Type != SPECIAL_RED_KNOWS_PURPLE {
		t.Fatalf("want type %q, got %q", SPECIAL_RED_KNOWS_PURPLE, view.SpecialInfo.Type)
	}
	if view.SpecialInfo.TargetSeat != room.PurpleSeat {
		t.Fatalf("want target seat %d, got %d", room.PurpleSeat, view.SpecialInfo.TargetSeat)
	}
}

func TestReveal_PurpleSeatGetsMessageWithoutTarget(t *testing.T) {
	room := NewRoom("AB23")

	view, err := room.Reveal(room.PurpleSeat)
	if err != nil {
		t.Fatalf("reveal purple seat failed: %v", err)
	}

	if view.SpecialInfo == nil {
		t.Fatalf("purple seat should carry special info")
	}
	if view.SpecialInfo.Type != SPECIAL_PURPLE_INFO {
		t.Fatalf("want type %q, got %q", SPECIAL_PURPLE_INFO, view.SpecialInfo.Type)
	}
	if view.SpecialInfo.Message != PURPLE_INFO_MESSAGE {
		t.Fatalf("unexpected message %q", view.SpecialInfo.Message)
	}

	// 幻妖不能反向知道摩根勒菲的座位
	if view.SpecialInfo.TargetSeat != 0 {
		t.Fatalf("purple view leaked target seat %d", view.SpecialInfo.TargetSeat)
	}
}

func TestReveal_BlueSeatsHaveNoSpecialInfo(t *testing.T) {
	room := NewRoom("AB23")

	for seat := 1; seat <= TOTAL_PLAYERS; seat++ {
		if seat == room.PurpleSeat || seat == room.RedSeat {
			continue
		}

		view, err := room.Reveal(seat)
		if err != nil {
			t.Fatalf("reveal seat %d failed: %v", seat, err)
		}

		if view.Team != TEAM_BLUE {
			t.Fatalf("seat %d should be blue, got %q", seat, view.Team)
		}
		if view.SpecialInfo != nil {
			t.Fatalf("blue seat %d leaked special info: %+v", seat, view.SpecialInfo)
		}
	}
}

func TestReveal_IsIdempotentPerSeat(t *testing.T) {
	room := NewRoom("AB23")

	if _, err := room.Reveal(1); err != nil {
		t.Fatalf("first reveal failed: %v", err)
	}
	if _, err := room.Reveal(1); err != nil {
		t.Fatalf("second reveal failed: %v", err)
	}

	if got := room.Status().ViewedPlayers; got != 1 {
		t.Fatalf("repeated reveal changed viewed count, want 1 got %d", got)
	}
}

func TestReveal_RejectsOutOfRangeSeatsWithoutMutation(t *testing.T) {
	room := NewRoom("AB23")

	for _, seat := range []int{0, 6, -1, 100} {
		if _, err := room.Reveal(seat); !errors.Is(err, ErrInvalidSeat) {
			t.Fatalf("seat %d: want ErrInvalidSeat, got %v", seat, err)
		}
	}

	if got := room.Status().ViewedPlayers; got != 0 {
		t.Fatalf("invalid seats mutated viewers, want 0 got %d", got)
	}
}

func TestStatus_ProgressesToAllViewed(t *testing.T) {
	room := NewRoom("AB23")

	status := room.Status()
	if status.ViewedPlayers != 0 || status.AllViewed {
		t.Fatalf("fresh room status broken: %+v", status)
	}

	for seat := 1; seat <= TOTAL_PLAYERS; seat++ {
		if _, err := room.Reveal(seat); err != nil {
			t.Fatalf("reveal seat %d failed: %v", seat, err)
		}

		status = room.Status()
		if status.ViewedPlayers != seat {
			t.Fatalf("after seat %d want %d viewed, got %d", seat, seat, status.ViewedPlayers)
		}
	}

	if !room.Status().AllViewed {
		t.Fatalf("all seats revealed but allViewed is false")
	}
}

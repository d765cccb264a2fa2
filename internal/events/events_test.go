package events

import (
	"encoding/json"
	"testing"
)

func TestDecode_ValidFrame(t *testing.T) {
	env, err := Decode([]byte(`{"event":"join_room","data":{"pin":"123456","name":"Alice"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if env.Event != JoinRoom {
		t.Errorf("Event = %q, want %q", env.Event, JoinRoom)
	}

	var p JoinRoomPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.PIN != "123456" || p.Name != "Alice" {
		t.Errorf("payload = %+v, want pin 123456 name Alice", p)
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "hello"},
		{"no event name", `{"data":{}}`},
		{"empty object", `{}`},
	}
	for _, c := range cases {
		if _, err := Decode([]byte(c.raw)); err == nil {
			t.Errorf("%s: expected decode error, got nil", c.name)
		}
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	raw, err := Marshal(JoinedRoom, JoinedRoomPayload{PlayerID: "p1", Name: "Alice"})
	if err != nil {
		t.Fatal(err)
	}
	env, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if env.Event != JoinedRoom {
		t.Errorf("Event = %q, want %q", env.Event, JoinedRoom)
	}
	var p JoinedRoomPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.PlayerID != "p1" {
		t.Errorf("PlayerID = %q, want %q", p.PlayerID, "p1")
	}
}

func TestMarshal_NoData(t *testing.T) {
	raw, err := Marshal(GameStarted, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"event":"game_started"}` {
		t.Errorf("frame = %s, want bare event", raw)
	}
}

func TestJoinRoomPayload_Validate(t *testing.T) {
	ok := JoinRoomPayload{PIN: "123456", Name: "Alice"}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := (JoinRoomPayload{Name: "Alice"}).Validate(); err == nil {
		t.Error("missing pin should fail")
	}
	if err := (JoinRoomPayload{PIN: "123456", Name: "   "}).Validate(); err == nil {
		t.Error("blank name should fail")
	}
}

func TestSubmitAnswerPayload_Validate(t *testing.T) {
	ok := SubmitAnswerPayload{PIN: "123456", PlayerID: "p1", Answer: 2, TimeLeft: 10, MaxTime: 20}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	bad := []SubmitAnswerPayload{
		{PlayerID: "p1", MaxTime: 20},                            // no pin
		{PIN: "123456", MaxTime: 20},                             // no player
		{PIN: "123456", PlayerID: "p1", MaxTime: 0},              // bad max time
		{PIN: "123456", PlayerID: "p1", TimeLeft: -1, MaxTime: 20},
		{PIN: "123456", PlayerID: "p1", TimeLeft: 30, MaxTime: 20},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
}

func TestStartGamePayload_Validate(t *testing.T) {
	if err := (StartGamePayload{}).Validate(); err == nil {
		t.Error("missing pin should fail")
	}
	// An empty deck passes payload validation; the room reports EmptyDeck.
	if err := (StartGamePayload{PIN: "123456"}).Validate(); err != nil {
		t.Errorf("empty deck should pass boundary validation: %v", err)
	}
}

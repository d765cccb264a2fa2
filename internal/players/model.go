package players

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Conn   string `json:"-"` // transport connection ref, owned by the hub
	Score  int    `json:"score"`
	Streak int    `json:"streak"`
}

package model

type ClientPlayer struct {
	ID         string `json:"name"`
	Color      Color  `json:"color"`
	Bot        bool   `json:"bot"`
	Difficulty string `json:"difficulty,omitempty"`
}

// BotProfile describes a selectable bot opponent.
type BotProfile struct {
	Difficulty  string `json:"difficulty"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Medal       string `json:"medal"`
	Description string `json:"description"`
}

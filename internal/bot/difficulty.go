package bot

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/variantchess-backend/internal/model"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Pro    Difficulty = "pro"
)

var Difficulties = []Difficulty{Easy, Medium, Hard, Pro}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q; valid: %v", s, Difficulties)
}

var profiles = map[Difficulty]model.BotProfile{
	Easy:   {Difficulty: string(Easy), Name: "EasyBot 1000", Rating: 1200, Medal: "bronze", Description: "Plays any legal move at random."},
	Medium: {Difficulty: string(Medium), Name: "MediumBot 2000", Rating: 1600, Medal: "silver", Description: "Takes a piece whenever it can."},
	Hard:   {Difficulty: string(Hard), Name: "HardBot 3000", Rating: 2000, Medal: "gold", Description: "Captures first, otherwise looks for a threat."},
	Pro:    {Difficulty: string(Pro), Name: "ProBot 4000", Rating: 2400, Medal: "gold", Description: "Goes after the most valuable target on the board."},
}

// Profile describes the opponent behind a difficulty.
func (d Difficulty) Profile() model.BotProfile {
	return profiles[d]
}

// Profiles lists every opponent from easiest to hardest.
func Profiles() []model.BotProfile {
	out := make([]model.BotProfile, 0, len(Difficulties))
	for _, d := range Difficulties {
		out = append(out, d.Profile())
	}
	return out
}

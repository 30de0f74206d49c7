package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// GameType identifies a kind of mini-game that content can be played as.
type GameType string

const (
	GameQuiz        GameType = "quiz"
	GameMatching    GameType = "matching"
	GameFlashcards  GameType = "flashcards"
	GameSpinWheel   GameType = "spin-wheel"
	GameWhackAMole  GameType = "whack-a-mole"
	GameMemoryCards GameType = "memory-cards"

	// Requirement-only types. Their item constraints are known, but no
	// template has been built for them yet.
	GameWordSearch GameType = "word-search"
	GameCrossword  GameType = "crossword"
	GameFillBlanks GameType = "fill-blanks"
)

// PlayableGameTypes returns the game types backed by a template, in catalog order.
func PlayableGameTypes() []GameType {
	return []GameType{
		GameQuiz,
		GameMatching,
		GameFlashcards,
		GameSpinWheel,
		GameWhackAMole,
		GameMemoryCards,
	}
}

// AllGameTypes returns every recognized game type: the playable ones
// followed by the requirement-only ones.
func AllGameTypes() []GameType {
	return append(PlayableGameTypes(), GameWordSearch, GameCrossword, GameFillBlanks)
}

// Known reports whether t is one of the recognized game types.
func (t GameType) Known() bool {
	return slices.Contains(AllGameTypes(), t)
}

// Playable reports whether t has a template in the catalog.
func (t GameType) Playable() bool {
	_, ok := byID[t]
	return ok
}

// ParseGameType converts user input into a recognized GameType.
func ParseGameType(s string) (GameType, error) {
	t := GameType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Known() {
		return "", fmt.Errorf("unknown game type %q", s)
	}
	return t, nil
}

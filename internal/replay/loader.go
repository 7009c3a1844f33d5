// Package replay loads the structured match model consumed by hit
// detection. Parsing the raw network recording into this form is an
// external concern; this package only deserializes the structured dump and
// assembles the team lists.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kcolton/carball/pkg/core"
)

var (
	// ErrNoBallData is returned when the dump carries no ball trajectory.
	ErrNoBallData = errors.New("replay has no ball trajectory")

	// ErrNoPlayers is returned when the dump carries no players.
	ErrNoPlayers = errors.New("replay has no players")
)

// matchDump is the on-disk JSON form of a structured match.
type matchDump struct {
	Name      string            `json:"name"`
	BallShape string            `json:"ballShape,omitempty"`
	Ball      []core.BallSample `json:"ball"`
	Players   []playerDump      `json:"players"`
}

type playerDump struct {
	Name     string              `json:"name"`
	IsOrange bool                `json:"isOrange"`
	Loadout  []core.LoadoutEntry `json:"loadout"`
	Frames   []core.PlayerSample `json:"frames"`
}

// Load reads a structured match dump from a file.
func Load(path string) (*core.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening replay dump: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a structured match dump and assembles the match model.
// Team player order follows the dump's player order, which resolver
// tie-breaking depends on.
func Parse(r io.Reader) (*core.Match, error) {
	var dump matchDump
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("decoding replay dump: %w", err)
	}
	if len(dump.Ball) == 0 {
		return nil, ErrNoBallData
	}
	if len(dump.Players) == 0 {
		return nil, ErrNoPlayers
	}

	match := &core.Match{
		Name:      dump.Name,
		BallShape: dump.BallShape,
		Ball:      dump.Ball,
	}

	blue := &core.Team{IsOrange: false}
	orange := &core.Team{IsOrange: true}
	for _, pd := range dump.Players {
		player := &core.Player{
			Name:     pd.Name,
			IsOrange: pd.IsOrange,
			Loadout:  pd.Loadout,
			Frames:   pd.Frames,
		}
		match.Players = append(match.Players, player)
		if pd.IsOrange {
			orange.Players = append(orange.Players, player)
		} else {
			blue.Players = append(blue.Players, player)
		}
	}
	match.Teams = []*core.Team{blue, orange}
	return match, nil
}

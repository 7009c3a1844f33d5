package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `{
	"name": "ranked-duel",
	"ballShape": "cube",
	"ball": [
		{"posX": 0, "posY": 0, "posZ": 93, "angVelX": 0, "angVelY": 0, "angVelZ": 0},
		{"posX": 10, "posY": 0, "posZ": 93, "angVelX": 1, "angVelY": 0, "angVelZ": 0, "hitTeam": 0, "goalNumber": 1}
	],
	"players": [
		{"name": "alpha", "isOrange": false, "loadout": [{"car": 23}], "frames": [
			{"posX": 0, "posY": 0, "posZ": 17, "rotX": 0, "rotY": 0, "rotZ": 0},
			{}
		]},
		{"name": "bravo", "isOrange": true, "loadout": [{"car": 23}, {"car": 26}], "frames": []},
		{"name": "charlie", "isOrange": false, "loadout": [{"car": 24}], "frames": []}
	]
}`

func TestParse_FullDump(t *testing.T) {
	match, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, "ranked-duel", match.Name)
	assert.Equal(t, "cube", match.BallShape)
	assert.Equal(t, uint(2), match.FrameCount())
	require.Len(t, match.Players, 3)

	bs, ok := match.BallSampleAt(1)
	require.True(t, ok)
	require.NotNil(t, bs.HitTeam)
	assert.Equal(t, 0, *bs.HitTeam)
	require.NotNil(t, bs.GoalNumber)
	assert.Equal(t, 1, *bs.GoalNumber)

	pos, ok := bs.Position()
	require.True(t, ok)
	assert.Equal(t, 10.0, pos.X)
}

func TestParse_TeamAssembly(t *testing.T) {
	match, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)

	blue, ok := match.TeamByOrange(false)
	require.True(t, ok)
	orange, ok := match.TeamByOrange(true)
	require.True(t, ok)

	// Dump order carries through; the resolver's tie-break relies on it.
	require.Len(t, blue.Players, 2)
	assert.Equal(t, "alpha", blue.Players[0].Name)
	assert.Equal(t, "charlie", blue.Players[1].Name)
	require.Len(t, orange.Players, 1)
	assert.Equal(t, "bravo", orange.Players[0].Name)
}

func TestParse_MissingComponentsStayNil(t *testing.T) {
	match, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)

	alpha := match.Players[0]
	s, ok := alpha.SampleAt(0)
	require.True(t, ok)
	assert.NotNil(t, s.PosX)

	// Frame 1 is an empty object: absence, not zeros.
	_, ok = alpha.SampleAt(1)
	assert.False(t, ok)

	bs, _ := match.BallSampleAt(0)
	assert.Nil(t, bs.HitTeam)
	assert.Nil(t, bs.GoalNumber)
}

func TestParse_NoBallData(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"name": "x", "ball": [], "players": [{"name": "a"}]}`))
	assert.ErrorIs(t, err, ErrNoBallData)
}

func TestParse_NoPlayers(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"name": "x", "ball": [{"posX": 0}], "players": []}`))
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"name": `))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDump), 0644))

	match, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ranked-duel", match.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

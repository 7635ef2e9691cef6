package csvexport

import (
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type day struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
}

type record struct {
	Base
	Title      string         `json:"title"`
	Travelers  int            `json:"travelers"`
	Featured   bool           `json:"featured"`
	Highlights pq.StringArray `json:"highlights"`
	Days       []day          `json:"days"`
	Secret     string         `json:"-"`
	Note       *string        `json:"note,omitempty"`
}

func TestEncodeEmptyProducesNoFile(t *testing.T) {
	out, err := Encode([]record{})
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.Nil(t, out)
}

func TestEncodeRejectsNonSlices(t *testing.T) {
	_, err := Encode(record{})
	assert.Error(t, err)
	_, err = Encode([]string{"a"})
	assert.Error(t, err)
}

func TestEncodeFormatsFields(t *testing.T) {
	created := time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)
	out, err := Encode([]record{{
		Base:       Base{ID: "101", CreatedAt: created},
		Title:      `The "Silverback" Trek`,
		Travelers:  2,
		Featured:   true,
		Highlights: pq.StringArray{"Gorilla Trekking", "Golden Monkeys"},
		Days:       []day{{Day: 1, Title: "Arrival"}},
		Secret:     "hidden",
	}})
	require.NoError(t, err)

	lines := strings.Split(string(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,created_at,title,travelers,featured,highlights,days,note", lines[0])
	assert.Equal(t,
		`"101","2024-02-10T09:30:00Z","The ""Silverback"" Trek",2,true,"Gorilla Trekking; Golden Monkeys","[{""day"":1,""title"":""Arrival""}]",`,
		lines[1])
	assert.NotContains(t, string(out), "hidden")
}

func TestEncodeAcceptsPointersAndKeepsOrder(t *testing.T) {
	out, err := Encode([]*record{{Title: "first"}, {Title: "second"}})
	require.NoError(t, err)

	lines := strings.Split(string(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"first"`)
	assert.Contains(t, lines[2], `"second"`)
	assert.False(t, strings.HasSuffix(string(out), "\n"))
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "bookings_2024-06-15.csv", FileName("bookings", at))
}

package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/infras/otel"
	"roombook/internal/domains/room/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 4, 2, hour, minute, 0, 0, time.UTC)
}

func interval(t *testing.T, start, end time.Time) model.Interval {
	t.Helper()

	iv, err := model.NewInterval(start, end)
	require.NoError(t, err)

	return iv
}

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "valid", start: at(9, 0), end: at(11, 0)},
		{name: "zero length", start: at(9, 0), end: at(9, 0), wantErr: true},
		{name: "inverted", start: at(11, 0), end: at(9, 0), wantErr: true},
		{name: "one nanosecond", start: at(9, 0), end: at(9, 0).Add(time.Nanosecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := model.NewInterval(tt.start, tt.end)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInterval)
				assert.Equal(t, model.Interval{}, iv)

				return
			}

			assert.NoError(t, err)
			assert.True(t, iv.Start.Before(iv.End))
			assert.Equal(t, tt.end.Sub(tt.start), iv.Duration())
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	booked := interval(t, at(9, 0), at(11, 0))

	tests := []struct {
		name      string
		candidate model.Interval
		want      bool
	}{
		{name: "inside", candidate: interval(t, at(10, 0), at(10, 30)), want: true},
		{name: "straddles start", candidate: interval(t, at(8, 30), at(9, 30)), want: true},
		{name: "straddles end", candidate: interval(t, at(10, 30), at(11, 30)), want: true},
		{name: "covers", candidate: interval(t, at(8, 0), at(12, 0)), want: true},
		{name: "identical", candidate: booked, want: true},
		{name: "touches end", candidate: interval(t, at(11, 0), at(12, 0)), want: false},
		{name: "touches start", candidate: interval(t, at(8, 0), at(9, 0)), want: false},
		{name: "before", candidate: interval(t, at(6, 0), at(7, 0)), want: false},
		{name: "after", candidate: interval(t, at(13, 0), at(14, 0)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booked.Overlaps(tt.candidate))
			assert.Equal(t, tt.want, tt.candidate.Overlaps(booked), "overlap must be symmetric")
		})
	}
}

func TestInterval_Bounds(t *testing.T) {
	var bounded otel.Bounded = interval(t, at(9, 0), at(11, 30))

	start, end := bounded.Bounds()
	assert.True(t, start.Equal(at(9, 0)))
	assert.True(t, end.Equal(at(11, 30)))
}

func TestInterval_OverlapsAcrossLocations(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	booked := interval(t, at(9, 0), at(11, 0))
	sameInstants := interval(t, at(9, 0).In(jakarta), at(11, 0).In(jakarta))
	adjacent := interval(t, at(11, 0).In(jakarta), at(12, 0).In(jakarta))

	assert.True(t, booked.Overlaps(sameInstants))
	assert.False(t, booked.Overlaps(adjacent))
}

func TestRoom_Conflict(t *testing.T) {
	room := model.Room{
		Name: "Room_A",
		Reservations: []model.Interval{
			interval(t, at(9, 0), at(11, 0)),
			interval(t, at(13, 0), at(15, 0)),
		},
	}

	got, busy := room.Conflict(interval(t, at(10, 0), at(14, 0)))
	assert.True(t, busy)
	assert.Equal(t, room.Reservations[0], got, "first conflicting reservation wins")

	assert.True(t, room.IsFreeDuring(interval(t, at(11, 0), at(13, 0))))
	assert.False(t, room.IsFreeDuring(interval(t, at(14, 0), at(16, 0))))
}

func TestRoom_Clone(t *testing.T) {
	room := model.Room{
		Name:         "Room_A",
		Equipment:    []string{"Projector"},
		Reservations: []model.Interval{interval(t, at(9, 0), at(11, 0))},
	}

	clone := room.Clone()
	clone.Equipment[0] = "Flipchart"
	clone.Reservations = append(clone.Reservations, interval(t, at(12, 0), at(13, 0)))

	assert.Equal(t, "Projector", room.Equipment[0])
	assert.Len(t, room.Reservations, 1)
}

func TestCategoryToDisplayName(t *testing.T) {
	want := map[model.Category]string{
		model.CategoryMeeting:    "Meeting",
		model.CategoryConference: "Conference",
		model.CategoryAuditorium: "Auditorium",
	}

	for _, c := range model.Categories() {
		name, err := model.CategoryToDisplayName(c)
		require.NoError(t, err)
		assert.Equal(t, want[c], name)
		assert.NoError(t, c.Validate())
	}

	for _, invalid := range []model.Category{0, -1, 4, 99} {
		name, err := model.CategoryToDisplayName(invalid)
		assert.ErrorIs(t, err, model.ErrUnknownCategory)
		assert.Empty(t, name)
		assert.ErrorIs(t, invalid.Validate(), model.ErrUnknownCategory)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Category
		wantErr bool
	}{
		{input: "Meeting", want: model.CategoryMeeting},
		{input: "conference", want: model.CategoryConference},
		{input: " AUDITORIUM ", want: model.CategoryAuditorium},
		{input: "Kitchen", wantErr: true},
		{input: "", wantErr: true},
		{input: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseCategory(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrUnknownCategory)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_JSON(t *testing.T) {
	type payload struct {
		Category model.Category `json:"category"`
	}

	raw, err := json.Marshal(payload{Category: model.CategoryConference})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"Conference"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":"meeting"}`), &decoded))
	assert.Equal(t, model.CategoryMeeting, decoded.Category)

	assert.Error(t, json.Unmarshal([]byte(`{"category":"Kitchen"}`), &decoded))

	_, err = json.Marshal(payload{Category: 42})
	assert.Error(t, err)

	assert.Equal(t, "Category(42)", model.Category(42).String())
}

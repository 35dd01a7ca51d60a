package nba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlowPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites cache window",
			in:   "/10s/prod/v1/20240315/scoreboard.json",
			want: "/15m/prod/v1/20240315/scoreboard.json",
		},
		{
			name: "no window segment",
			in:   "/prod/v1/today.json",
			want: "/prod/v1/today.json",
		},
		{
			name: "every occurrence",
			in:   "/10s/prod/10s.json",
			want: "/15m/prod/15m.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slowPath(tt.in))
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		params map[string]string
		want   string
	}{
		{
			name:   "team placeholder",
			in:     "/prod/v1/2023/teams/{{teamUrlCode}}/leaders.json",
			params: map[string]string{"teamUrlCode": "1610612747"},
			want:   "/prod/v1/2023/teams/1610612747/leaders.json",
		},
		{
			name: "box score placeholders",
			in:   "/prod/v1/{{gameDate}}/{{gameId}}_boxscore.json",
			params: map[string]string{
				"gameDate": "20240315",
				"gameId":   "0022300999",
			},
			want: "/prod/v1/20240315/0022300999_boxscore.json",
		},
		{
			name:   "no placeholders",
			in:     "/prod/v1/today.json",
			params: map[string]string{"teamUrlCode": "1610612747"},
			want:   "/prod/v1/today.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandPath(tt.in, tt.params))
		})
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Member{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Member{FirstName: "Ada"}.FullName())
}

func TestStartCommandIsPrivate(t *testing.T) {
	assert.True(t, StartCommand{ChatType: "private"}.IsPrivate())
	assert.False(t, StartCommand{ChatType: "supergroup"}.IsPrivate())
	assert.False(t, StartCommand{ChatType: "group"}.IsPrivate())
}

func TestBotMembershipChangeEventType(t *testing.T) {
	tests := []struct {
		name      string
		old, new  string
		want      BotEventType
		published bool
	}{
		{"added as member", StatusLeft, StatusMember, BotEventAdded, true},
		{"added as admin", StatusKicked, StatusAdministrator, BotEventAdded, true},
		{"first seen", "", StatusAdministrator, BotEventAdded, true},
		{"left", StatusAdministrator, StatusLeft, BotEventRemoved, true},
		{"kicked", StatusMember, StatusKicked, BotEventRemoved, true},
		{"promoted", StatusMember, StatusAdministrator, "", false},
		{"demoted", StatusAdministrator, StatusMember, "", false},
		{"still out", StatusLeft, StatusKicked, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BotMembershipChange{OldStatus: tt.old, NewStatus: tt.new}.EventType()
			assert.Equal(t, tt.published, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

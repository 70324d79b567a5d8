package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey(3, 9), PairKey(9, 3))
	assert.Equal(t, "3:9", PairKey(9, 3))
	assert.NotEqual(t, PairKey(1, 23), PairKey(12, 3))
}

func TestAvailabilityNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      Availability
		want    Availability
		wantErr bool
	}{
		{
			name: "valid and normalized",
			in:   Availability{" Monday ": {" 09:00-12:00", "14:00-15:30"}},
			want: Availability{"monday": {"09:00-12:00", "14:00-15:30"}},
		},
		{name: "empty", in: Availability{}, want: Availability{}},
		{name: "unknown day", in: Availability{"funday": {"09:00-10:00"}}, wantErr: true},
		{name: "missing dash", in: Availability{"friday": {"0900"}}, wantErr: true},
		{name: "bad clock", in: Availability{"friday": {"25:00-26:00"}}, wantErr: true},
		{name: "end before start", in: Availability{"friday": {"10:00-09:00"}}, wantErr: true},
		{name: "zero length", in: Availability{"friday": {"10:00-10:00"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParticipants(t *testing.T) {
	s := Session{RequesterID: 1, ProviderID: 2}
	assert.True(t, s.Involves(1))
	assert.False(t, s.Involves(3))
	assert.Equal(t, uint(1), s.Counterpart(2))
	assert.Equal(t, uint(2), s.Counterpart(1))

	c := Conversation{User1ID: 4, User2ID: 5}
	assert.True(t, c.HasParticipant(5))
	assert.Equal(t, uint(4), c.Other(5))

	conn := Connection{RequesterID: 7, RecipientID: 8}
	assert.True(t, conn.Involves(8))
	assert.False(t, conn.Involves(9))
}

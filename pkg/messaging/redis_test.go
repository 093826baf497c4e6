package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(Options{Addr: "127.0.0.1:1", DialTimeout: 500 * time.Millisecond})

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestMessage_Decode(t *testing.T) {
	msg := Message{Channel: "propiedades:events", Payload: []byte(`{"type":"owner.created","aggregateId":"abc"}`)}

	var out struct {
		Type        string `json:"type"`
		AggregateID string `json:"aggregateId"`
	}
	require.NoError(t, msg.Decode(&out))
	assert.Equal(t, "owner.created", out.Type)
	assert.Equal(t, "abc", out.AggregateID)

	bad := Message{Payload: []byte("not-json")}
	assert.Error(t, bad.Decode(&out))
}

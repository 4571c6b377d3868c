package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKafkaProducer_Validation(t *testing.T) {
	_, err := NewKafkaProducer(KafkaConfig{Topic: "t"})
	assert.Error(t, err)

	_, err = NewKafkaProducer(KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)
}

func TestNewKafkaProducer_FlushesSingleMessagesQuickly(t *testing.T) {
	p, err := NewKafkaProducer(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "forum-events"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	assert.False(t, p.writer.Async)
	assert.LessOrEqual(t, p.writer.BatchTimeout, 50*time.Millisecond)
	assert.Equal(t, "forum-events", p.writer.Topic)
}

func TestMakeKeyFromID(t *testing.T) {
	assert.Equal(t, "42", MakeKeyFromID(42))
}

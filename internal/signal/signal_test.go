package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic_PublishReachesCurrentSubscribers(t *testing.T) {
	topic := NewTopic[string]("filterProjects")
	assert.Equal(t, "filterProjects", topic.Name())

	var a, b []string
	unsubA := topic.Subscribe(func(v string) { a = append(a, v) })
	topic.Subscribe(func(v string) { b = append(b, v) })

	assert.Equal(t, 2, topic.Publish("live"))
	unsubA()
	unsubA()
	assert.Equal(t, 1, topic.Publish("cloud"))

	assert.Equal(t, []string{"live"}, a)
	assert.Equal(t, []string{"live", "cloud"}, b)
	assert.Equal(t, 1, topic.Subscribers())
}

func TestTopic_NoReplayForLateSubscribers(t *testing.T) {
	topic := NewTopic[int]("n")
	assert.Zero(t, topic.Publish(1), "no listener, value is lost")

	var got []int
	topic.Subscribe(func(v int) { got = append(got, v) })
	assert.Empty(t, got)

	topic.Publish(2)
	assert.Equal(t, []int{2}, got)
}

func TestTopic_UnsubscribeDuringPublish(t *testing.T) {
	topic := NewTopic[int]("n")
	calls := 0
	var unsub func()
	unsub = topic.Subscribe(func(int) {
		calls++
		unsub()
	})

	topic.Publish(1)
	topic.Publish(2)
	assert.Equal(t, 1, calls)
}

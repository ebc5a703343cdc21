package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(UpdatedEvent, "componentsPane")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "componentsPane", event.Payload)
	require.Equal(t, UpdatedEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)

	cancel()
	time.Sleep(20 * time.Millisecond)

	require.Nil(t, ListenCmd(ctx, ch)())
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	require.Nil(t, ListenCmd(context.Background(), ch)())
}

func TestContinuousListener_ListenInOrder(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)

	broker.Publish(CreatedEvent, 1)
	broker.Publish(UpdatedEvent, 2)
	broker.Publish(DeletedEvent, 3)

	for i, want := range []EventType{CreatedEvent, UpdatedEvent, DeletedEvent} {
		event, ok := listener.Listen()().(Event[int])
		require.True(t, ok)
		require.Equal(t, i+1, event.Payload)
		require.Equal(t, want, event.Type)
	}
}

type readyMsg struct{}

func TestOneShotCmd_YieldsAfterFire(t *testing.T) {
	o := NewOneShot()
	cmd := OneShotCmd(context.Background(), o, readyMsg{})

	result := make(chan any, 1)
	go func() { result <- cmd() }()

	select {
	case <-result:
		require.Fail(t, "command returned before fire")
	case <-time.After(20 * time.Millisecond):
	}

	o.Fire()

	select {
	case msg := <-result:
		require.Equal(t, readyMsg{}, msg)
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for fire")
	}
}

func TestOneShotCmd_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Nil(t, OneShotCmd(ctx, NewOneShot(), readyMsg{})())
}

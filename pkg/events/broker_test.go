package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func TestBrokerDeliversToSubscribers(t *testing.T) {
	b := NewBroker()
	ch1, cancel1 := b.Subscribe(JobChannel("j1"))
	defer cancel1()
	ch2, cancel2 := b.Subscribe(JobChannel("j1"))
	defer cancel2()
	other, cancelOther := b.Subscribe(JobChannel("j2"))
	defer cancelOther()

	require.NoError(t, b.Publish(JobChannel("j1"), map[string]string{"type": "test"}))

	for _, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case raw := <-ch:
			var got map[string]string
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, "test", got["type"])
		default:
			t.Fatal("expected event on subscriber channel")
		}
	}

	select {
	case <-other:
		t.Fatal("event leaked to unrelated channel")
	default:
	}
}

func TestBrokerPublishWithoutSubscribersIsNoop(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Publish(JobChannel("nobody"), map[string]string{"type": "test"}))
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(GlobalChannel)
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "cancel should close the subscriber channel")

	// Publishing after cancel must not panic or deliver.
	require.NoError(t, b.Publish(GlobalChannel, map[string]string{"type": "test"}))

	// Double cancel is safe.
	cancel()
}

func TestBrokerDropsWhenSubscriberFull(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(GlobalChannel)
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		require.NoError(t, b.Publish(GlobalChannel, map[string]int{"seq": i}))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestPublisherJobStatusFansOutToGlobal(t *testing.T) {
	b := NewBroker()
	jobCh, cancelJob := b.Subscribe(JobChannel("j1"))
	defer cancelJob()
	globalCh, cancelGlobal := b.Subscribe(GlobalChannel)
	defer cancelGlobal()

	p := NewPublisher(b)
	p.PublishJobStatus("j1", models.JobExecuting, nil)

	for _, ch := range []<-chan []byte{jobCh, globalCh} {
		select {
		case raw := <-ch:
			var got JobStatusPayload
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, EventTypeJobStatus, got.Type)
			assert.Equal(t, "j1", got.JobID)
			assert.Equal(t, models.JobExecuting, got.Status)
			assert.NotEmpty(t, got.Timestamp)
		default:
			t.Fatal("expected job status event")
		}
	}
}

func TestPublisherStepProgressOnlyOnJobChannel(t *testing.T) {
	b := NewBroker()
	globalCh, cancelGlobal := b.Subscribe(GlobalChannel)
	defer cancelGlobal()
	jobCh, cancelJob := b.Subscribe(JobChannel("j1"))
	defer cancelJob()

	p := NewPublisher(b)
	p.PublishStepProgress("j1", "s1", models.StepCompleted, "", 42)

	select {
	case raw := <-jobCh:
		var got StepProgressPayload
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "s1", got.StepID)
		assert.Equal(t, int64(42), got.DurationMs)
	default:
		t.Fatal("expected step progress event")
	}

	select {
	case <-globalCh:
		t.Fatal("step progress should not reach the global channel")
	default:
	}
}

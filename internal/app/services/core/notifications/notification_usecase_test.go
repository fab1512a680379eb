package notifications

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeDeviceTokenRepository struct {
	tokens []string
	err    error
}

func (f *fakeDeviceTokenRepository) UpsertByToken(ctx context.Context, deviceToken *models.DeviceToken) error {
	return nil
}

func (f *fakeDeviceTokenRepository) FindAllTokens(ctx context.Context) ([]string, error) {
	return f.tokens, f.err
}

type fakePushQueue struct {
	published []contracts.PushMessage
	deadlines []time.Time
	failAfter int
}

func (f *fakePushQueue) Publish(ctx context.Context, message contracts.PushMessage) error {
	if f.failAfter > 0 && len(f.published) >= f.failAfter {
		return errors.New("broker rejected publish")
	}
	if deadline, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, deadline)
	}
	f.published = append(f.published, message)
	return nil
}

func tokensFixture(n int) []string {
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tokens = append(tokens, fmt.Sprintf("token-%04d", i))
	}
	return tokens
}

func newBroadcastUsecase(repo contracts.DeviceTokenRepository, queue contracts.PushQueue) contracts.NotificationUsecase {
	internalConfig := &config.InternalConfig{}
	return NewNotificationUsecase(repo, queue, internalConfig)
}

func TestBroadcast_BatchesOfAtMostOneHundred(t *testing.T) {
	testCases := []struct {
		tokenCount    int
		wantBatches   int
		wantLastBatch int
	}{
		{tokenCount: 0, wantBatches: 0},
		{tokenCount: 1, wantBatches: 1, wantLastBatch: 1},
		{tokenCount: 100, wantBatches: 1, wantLastBatch: 100},
		{tokenCount: 101, wantBatches: 2, wantLastBatch: 1},
		{tokenCount: 250, wantBatches: 3, wantLastBatch: 50},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d tokens", tc.tokenCount), func(t *testing.T) {
			queue := &fakePushQueue{}
			uc := newBroadcastUsecase(&fakeDeviceTokenRepository{tokens: tokensFixture(tc.tokenCount)}, queue)

			response, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
				Title: "Nueva función",
				Body:  "Ya puedes agendar citas desde la app",
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.tokenCount, response.Tokens)
			assert.Equal(t, tc.wantBatches, response.Batches)
			assert.Len(t, queue.published, tc.wantBatches)

			for _, message := range queue.published {
				assert.LessOrEqual(t, len(message.Tokens), 100)
				assert.NotEmpty(t, message.ID)
				assert.Equal(t, "Nueva función", message.Title)
			}
			if tc.wantBatches > 0 {
				assert.Len(t, queue.published[tc.wantBatches-1].Tokens, tc.wantLastBatch)
			}
		})
	}
}

func TestBroadcast_EveryTokenCoveredExactlyOnce(t *testing.T) {
	queue := &fakePushQueue{}
	uc := newBroadcastUsecase(&fakeDeviceTokenRepository{tokens: tokensFixture(250)}, queue)

	_, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
		Title: "t", Body: "b",
	})
	assert.NoError(t, err)

	seen := map[string]int{}
	for _, message := range queue.published {
		for _, token := range message.Tokens {
			seen[token]++
		}
	}
	assert.Len(t, seen, 250)
	for token, count := range seen {
		assert.Equal(t, 1, count, "token %s", token)
	}
}

func TestBroadcast_UniqueMessageIDs(t *testing.T) {
	queue := &fakePushQueue{}
	uc := newBroadcastUsecase(&fakeDeviceTokenRepository{tokens: tokensFixture(300)}, queue)

	_, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
		Title: "t", Body: "b",
	})
	assert.NoError(t, err)

	ids := map[string]struct{}{}
	for _, message := range queue.published {
		ids[message.ID] = struct{}{}
	}
	assert.Len(t, ids, 3)
}

func TestBroadcast_PublishFailureStopsFanout(t *testing.T) {
	queue := &fakePushQueue{failAfter: 1}
	uc := newBroadcastUsecase(&fakeDeviceTokenRepository{tokens: tokensFixture(250)}, queue)

	_, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
		Title: "t", Body: "b",
	})
	assert.Error(t, err)
	assert.Len(t, queue.published, 1, "no further batches after a failed publish")
}

func TestBroadcast_PublishTimeoutIsPerBatch(t *testing.T) {
	internalConfig := &config.InternalConfig{}
	internalConfig.Push.PublishTimeoutSecs = 10

	queue := &fakePushQueue{}
	uc := NewNotificationUsecase(&fakeDeviceTokenRepository{tokens: tokensFixture(250)}, queue, internalConfig)

	start := time.Now()
	response, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
		Title: "t", Body: "b",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, response.Batches)

	// Each batch gets its own fresh deadline; the audience size cannot
	// exhaust a single shared one.
	assert.Len(t, queue.deadlines, 3)
	for i, deadline := range queue.deadlines {
		assert.Greater(t, deadline.Sub(start), 9*time.Second, "batch %d", i)
	}
}

func TestBroadcast_NoDeadlineWithoutTimeoutConfig(t *testing.T) {
	queue := &fakePushQueue{}
	uc := newBroadcastUsecase(&fakeDeviceTokenRepository{tokens: tokensFixture(150)}, queue)

	_, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
		Title: "t", Body: "b",
	})
	assert.NoError(t, err)
	assert.Len(t, queue.published, 2)
	assert.Empty(t, queue.deadlines, "zero timeout means the parent context is used as-is")
}

func TestBroadcast_RepositoryErrorSurfaces(t *testing.T) {
	uc := newBroadcastUsecase(&fakeDeviceTokenRepository{err: errors.New("db down")}, &fakePushQueue{})

	_, err := uc.Broadcast(context.Background(), &requests.BroadcastNotification{
		Title: "t", Body: "b",
	})
	assert.Error(t, err)
}

package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/inoova/shipping-connector/pkg/connector/webhook"
	mock_storage "github.com/inoova/shipping-connector/test/mock/connector/storage"
)

const endpoint = "/notify"

func (s *WebhookControllerTestSuite) runProcessor(done <-chan struct{}, opts ...webhook.ProcessorOption) {
	rtx := mock_storage.NewMockTx(s.ctrl)
	s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx, s.ctx, nil).AnyTimes()
	s.storage.EXPECT().GetWebhookEvent(gomock.Any(), rtx, 10).Return(nil, nil).AnyTimes()
	rtx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cfg := webhook.Config{CheckInterval: 1, BatchSize: 10, Timeout: 5, MaxRetry: 3}
	opts = append([]webhook.ProcessorOption{webhook.WithStorage(s.storage), webhook.WithRetryDelay(time.Millisecond)}, opts...)
	proc, err := webhook.NewProcessorWithConfig(cfg, opts...)
	s.Require().NoError(err)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		proc.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		s.Fail("webhook event was not processed")
	}
	cancel()
	wg.Wait()
}

func (s *WebhookControllerTestSuite) outbox(event model.WebhookEvent) []storage.OutboxMsg {
	raw, _ := json.Marshal(event)
	key, err := webhook.Sign("secret", raw)
	s.Require().NoError(err)
	return []storage.OutboxMsg{{RecID: 1, Key: key, Msg: raw}}
}

func (s *WebhookControllerTestSuite) TestWebhookEventProcessor() {
	target, err := url.JoinPath(s.server.URL, endpoint)
	s.Require().NoError(err)
	msgs := s.outbox(model.WebhookEvent{
		ID:             "MAT-DN-2024-00001",
		Url:            target,
		Type:           model.WebhookEventShipmentCreated,
		TrackingNumber: "ZX12345678",
		CreatedAt:      12345,
	})

	var body []byte
	var signature string
	s.mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		signature = r.Header.Get("X-Payload-Signature")
		w.WriteHeader(http.StatusOK)
	})

	done := make(chan struct{})
	rtx1 := mock_storage.NewMockTx(s.ctrl)
	tx := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx1, s.ctx, nil),
		s.storage.EXPECT().GetWebhookEvent(gomock.Any(), rtx1, 10).Return(msgs, nil),
		rtx1.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().DeleteWebhookEvent(gomock.Any(), tx, gomock.Eq([]int64{1})).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			close(done)
			return nil
		}),
	)

	s.runProcessor(done)
	s.Equal(msgs[0].Msg, body)
	s.Equal(msgs[0].Key, signature)
}

func (s *WebhookControllerTestSuite) TestWebhookEventProcessorUnreachable() {
	target, err := url.JoinPath(s.server.URL, endpoint)
	s.Require().NoError(err)
	msgs := s.outbox(model.WebhookEvent{ID: "MAT-DN-2024-00001", Url: target, Type: model.WebhookEventShipmentCreated})

	var calls int32
	s.mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	done := make(chan struct{})
	rtx1 := mock_storage.NewMockTx(s.ctrl)
	tx := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx1, s.ctx, nil),
		s.storage.EXPECT().GetWebhookEvent(gomock.Any(), rtx1, 10).Return(msgs, nil),
		rtx1.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().DeleteWebhookEvent(gomock.Any(), tx, gomock.Eq([]int64{1})).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			close(done)
			return nil
		}),
	)

	s.runProcessor(done)
	s.EqualValues(3, atomic.LoadInt32(&calls))
}

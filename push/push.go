package push

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"apuntes-app/apuntes/models"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrSubscriptionGone signals a terminal delivery failure: the push service
// reported the endpoint no longer exists, so the subscription should be
// dropped rather than retried.
var ErrSubscriptionGone = errors.New("push subscription no longer exists")

type DelivererInterface interface {
	Send(ctx context.Context, sub models.PushSubscription, payload []byte) error
}

// Client delivers Web Push messages signed with the application's VAPID keys.
type Client struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
}

func NewClient(vapidPublicKey, vapidPrivateKey, subscriber string) *Client {
	return &Client{
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
	}
}

func (c *Client) Send(ctx context.Context, sub models.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.vapidPublicKey,
		VAPIDPrivateKey: c.vapidPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return fmt.Errorf("failed to deliver push message: %w", err)
	}
	defer resp.Body.Close()

	// 404/410 mean the push service has discarded the subscription for good.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return ErrSubscriptionGone
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}

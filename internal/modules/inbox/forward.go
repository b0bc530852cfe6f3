package inbox

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/clementmotivates/core/internal/models"
)

const forwardTimeout = 10 * time.Second

// Forwarder relays accepted inquiries to an external form endpoint. The
// relay is best effort; the inquiry is already stored when it runs, so a
// failed delivery is only logged.
type Forwarder struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewForwarder(endpoint string, log *zap.Logger) *Forwarder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Forwarder{
		endpoint: endpoint,
		client:   &http.Client{Timeout: forwardTimeout},
		log:      log,
	}
}

// Forward delivers the inquiry in the background. A no-op when no
// endpoint is configured.
func (f *Forwarder) Forward(m models.ContactMessage) {
	if f.endpoint == "" {
		return
	}
	go f.deliver(m)
}

func (f *Forwarder) deliver(m models.ContactMessage) {
	payload, err := json.Marshal(map[string]string{
		"name":            m.Name,
		"email":           m.Email,
		"serviceInterest": m.ServiceInterest,
		"message":         m.Message,
	})
	if err != nil {
		f.log.Warn("form forward: serialize inquiry", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		f.log.Warn("form forward: build request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("form forward failed", zap.String("endpoint", f.endpoint), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log.Warn("form forward rejected",
			zap.String("endpoint", f.endpoint),
			zap.Int("status", resp.StatusCode))
		return
	}
	f.log.Debug("inquiry forwarded", zap.String("id", m.ID))
}

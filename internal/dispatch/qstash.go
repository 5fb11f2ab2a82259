package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"
	"go.uber.org/zap"
)

var ErrPublishRejected = errors.New("publish rejected")

const (
	publishTimeout = 10 * time.Second
	publishRetries = 2
)

// QStashPublisher schedules jobs through the QStash REST API. QStash later
// POSTs the job body to the callback URL.
type QStashPublisher struct {
	logs        *zap.SugaredLogger
	client      heimdall.Client
	baseURL     string
	token       string
	callbackURL string
}

func NewQStashPublisher(logger *zap.SugaredLogger, baseURL, token, callbackURL string) *QStashPublisher {
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(publishTimeout),
		httpclient.WithRetryCount(publishRetries),
		httpclient.WithRetrier(heimdall.NewRetrier(heimdall.NewConstantBackoff(200*time.Millisecond, 100*time.Millisecond))),
	)

	return &QStashPublisher{
		logs:        logger,
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		token:       token,
		callbackURL: callbackURL,
	}
}

func (p *QStashPublisher) Publish(ctx context.Context, job Job, delay time.Duration) error {
	if err := job.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+p.token)
	headers.Set("Content-Type", "application/json")
	headers.Set("Upstash-Deduplication-Id", job.ID)
	if delay > 0 {
		headers.Set("Upstash-Delay", fmt.Sprintf("%ds", int64(delay.Round(time.Second)/time.Second)))
	}

	url := fmt.Sprintf("%s/v2/publish/%s", p.baseURL, p.callbackURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build publish request: %w", err)
	}
	req.Header = headers

	// heimdall returns the last response together with the error once retries run out
	resp, err := p.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("publish job %s: %w", job.ID, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrPublishRejected, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	p.logs.Infow("job published",
		"job_id", job.ID,
		"kind", job.Kind,
		"delay", delay.String())
	return nil
}

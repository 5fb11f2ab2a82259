package payload

import (
	"regexp"

	"payoutd/internal/core"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type ClaimRequest struct {
	UserKey          string            `json:"userKey"`
	RecipientAddress string            `json:"recipientAddress"`
	EventID          string            `json:"eventId"`
	Source           string            `json:"source"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

func (c ClaimRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserKey, validation.Required, validation.Length(1, 128)),
		validation.Field(&c.RecipientAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&c.EventID, validation.Required, validation.Length(1, 128)),
		validation.Field(&c.Source, validation.Required, validation.Length(1, 32)),
		validation.Field(&c.Metadata, validation.Length(0, 32)),
	)
}

func (c ClaimRequest) ToMessage() core.ClaimMessage {
	return core.ClaimMessage{
		UserKey:          c.UserKey,
		RecipientAddress: c.RecipientAddress,
		EventID:          c.EventID,
		Source:           c.Source,
		Metadata:         c.Metadata,
	}
}

// StatusRequest is read from the query string of the status endpoint.
type StatusRequest struct {
	UserKey string
	EventID string
}

func (s StatusRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.UserKey, validation.Required, validation.Length(1, 128)),
		validation.Field(&s.EventID, validation.Required, validation.Length(1, 128)),
	)
}

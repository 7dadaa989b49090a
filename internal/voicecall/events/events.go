// Package events decodes call-automation webhook deliveries into a closed set of
// event kinds. Decoding happens once at the HTTP boundary; everything past it
// switches on Kind.
package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedDelivery = errors.New("malformed event delivery")

const (
	communicationPrefix  = "Microsoft.Communication."
	subscriptionValidate = "Microsoft.EventGrid.SubscriptionValidationEvent"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindIncomingCall
	KindCallConnected
	KindParticipantsUpdated
	KindRecognizeCompleted
	KindRecognizeFailed
	KindPlayCompleted
	KindPlayFailed
	KindCallDisconnected
	KindAnswerFailed
)

var kindsByType = map[string]Kind{
	"IncomingCall":        KindIncomingCall,
	"CallConnected":       KindCallConnected,
	"ParticipantsUpdated": KindParticipantsUpdated,
	"RecognizeCompleted":  KindRecognizeCompleted,
	"RecognizeFailed":     KindRecognizeFailed,
	"PlayCompleted":       KindPlayCompleted,
	"PlayFailed":          KindPlayFailed,
	"CallDisconnected":    KindCallDisconnected,
	"AnswerFailed":        KindAnswerFailed,
}

var kindNames = [...]string{
	KindUnknown:             "Unknown",
	KindIncomingCall:        "IncomingCall",
	KindCallConnected:       "CallConnected",
	KindParticipantsUpdated: "ParticipantsUpdated",
	KindRecognizeCompleted:  "RecognizeCompleted",
	KindRecognizeFailed:     "RecognizeFailed",
	KindPlayCompleted:       "PlayCompleted",
	KindPlayFailed:          "PlayFailed",
	KindCallDisconnected:    "CallDisconnected",
	KindAnswerFailed:        "AnswerFailed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// ResultInformation is the platform's outcome detail attached to failure events.
type ResultInformation struct {
	Code    int    `json:"code"`
	SubCode int    `json:"subCode"`
	Message string `json:"message"`
}

// Event is one decoded domain event.
type Event struct {
	Kind Kind
	// Type is the type tag with the communication prefix removed.
	Type                string
	CallConnectionID    string
	IncomingCallContext string
	CallerRawID         string
	Speech              string
	Result              *ResultInformation
	// Malformed is set when the element could not be decoded at all.
	Malformed bool
}

// Delivery is one inbound webhook request.
type Delivery struct {
	// ValidationCode is set when the delivery carries a subscription handshake.
	// Events is empty in that case.
	ValidationCode string
	Events         []Event
}

func (d Delivery) IsValidation() bool {
	return d.ValidationCode != ""
}

type participant struct {
	RawID string `json:"rawId"`
}

type speechResult struct {
	Speech string `json:"speech"`
}

// payload is the union of the fields read from any event body.
type payload struct {
	CallConnectionID    string             `json:"callConnectionId"`
	IncomingCallContext string             `json:"incomingCallContext"`
	From                *participant       `json:"from"`
	SpeechResult        *speechResult      `json:"speechResult"`
	RecognitionResult   *speechResult      `json:"recognitionResult"`
	ResultInformation   *ResultInformation `json:"resultInformation"`
	ValidationCode      string             `json:"validationCode"`
}

// envelope covers Event Grid (eventType), CloudEvents (type) and bare events.
type envelope struct {
	EventType string          `json:"eventType"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
}

// Decode parses a delivery body holding either a single event object or an array
// of them. A subscription validation event anywhere in the delivery wins over
// every other element.
func Decode(body []byte) (Delivery, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Delivery{}, fmt.Errorf("%w: empty body", ErrMalformedDelivery)
	}

	var elements []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return Delivery{}, fmt.Errorf("%w: %v", ErrMalformedDelivery, err)
		}
	case '{':
		if !json.Valid(trimmed) {
			return Delivery{}, fmt.Errorf("%w: invalid json object", ErrMalformedDelivery)
		}
		elements = []json.RawMessage{trimmed}
	default:
		return Delivery{}, fmt.Errorf("%w: expected object or array", ErrMalformedDelivery)
	}

	delivery := Delivery{Events: make([]Event, 0, len(elements))}
	for _, raw := range elements {
		event, validationCode := decodeElement(raw)
		if validationCode != "" {
			return Delivery{ValidationCode: validationCode}, nil
		}
		delivery.Events = append(delivery.Events, event)
	}
	return delivery, nil
}

func decodeElement(raw json.RawMessage) (Event, string) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Event{Kind: KindUnknown, Malformed: true}, ""
	}

	typeTag := env.EventType
	if typeTag == "" {
		typeTag = env.Type
	}

	body := raw
	if d := bytes.TrimSpace(env.Data); len(d) > 0 && d[0] == '{' {
		body = d
	}
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Event{Kind: KindUnknown, Type: typeTag, Malformed: true}, ""
	}

	if typeTag == subscriptionValidate {
		if p.ValidationCode != "" {
			return Event{}, p.ValidationCode
		}
		return Event{Kind: KindUnknown, Type: typeTag, Malformed: true}, ""
	}

	name := strings.TrimPrefix(typeTag, communicationPrefix)
	event := Event{
		Kind:                kindsByType[name],
		Type:                name,
		CallConnectionID:    p.CallConnectionID,
		IncomingCallContext: p.IncomingCallContext,
		Result:              p.ResultInformation,
	}
	if p.From != nil {
		event.CallerRawID = p.From.RawID
	}
	switch {
	case p.SpeechResult != nil:
		event.Speech = strings.TrimSpace(p.SpeechResult.Speech)
	case p.RecognitionResult != nil:
		event.Speech = strings.TrimSpace(p.RecognitionResult.Speech)
	}
	return event, ""
}
